// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	m "sekolahku_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherName  string  `json:"teacher_name" validate:"required,min=2"`
	TeacherNIP   *string `json:"teacher_nip,omitempty" validate:"omitempty,min=8,max=30"`
	TeacherEmail *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
}

func (r *CreateTeacherRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateTeacherRequest) ToModel() *m.TeacherModel {
	return &m.TeacherModel{
		TeacherName:     strings.TrimSpace(r.TeacherName),
		TeacherNIP:      r.TeacherNIP,
		TeacherEmail:    r.TeacherEmail,
		TeacherIsActive: true,
	}
}

type PatchTeacherRequest struct {
	TeacherName     *string `json:"teacher_name,omitempty" validate:"omitempty,min=2"`
	TeacherNIP      *string `json:"teacher_nip,omitempty" validate:"omitempty,min=8,max=30"`
	TeacherEmail    *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherIsActive *bool   `json:"teacher_is_active,omitempty"`
}

func (r *PatchTeacherRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchTeacherRequest) ApplyPatch(dst *m.TeacherModel) {
	if r.TeacherName != nil {
		dst.TeacherName = strings.TrimSpace(*r.TeacherName)
	}
	if r.TeacherNIP != nil {
		dst.TeacherNIP = r.TeacherNIP
	}
	if r.TeacherEmail != nil {
		dst.TeacherEmail = r.TeacherEmail
	}
	if r.TeacherIsActive != nil {
		dst.TeacherIsActive = *r.TeacherIsActive
	}
}
