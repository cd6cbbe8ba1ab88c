// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "sekolahku_backend/internals/features/school/academics/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,min=2"`
	SubjectCode string `json:"subject_code" validate:"required,min=2,max=16"`
}

func (r *CreateSubjectRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateSubjectRequest) ToModel() *m.SubjectModel {
	return &m.SubjectModel{
		SubjectName:     strings.TrimSpace(r.SubjectName),
		SubjectCode:     strings.ToUpper(strings.TrimSpace(r.SubjectCode)),
		SubjectIsActive: true,
	}
}

type PatchSubjectRequest struct {
	SubjectName     *string `json:"subject_name,omitempty" validate:"omitempty,min=2"`
	SubjectCode     *string `json:"subject_code,omitempty" validate:"omitempty,min=2,max=16"`
	SubjectIsActive *bool   `json:"subject_is_active,omitempty"`
}

func (r *PatchSubjectRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchSubjectRequest) ApplyPatch(dst *m.SubjectModel) {
	if r.SubjectName != nil {
		dst.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectCode != nil {
		dst.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.SubjectCode))
	}
	if r.SubjectIsActive != nil {
		dst.SubjectIsActive = *r.SubjectIsActive
	}
}
