// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	ClassName              string  `json:"class_name"  validate:"required,min=1"`
	ClassGrade             int     `json:"class_grade" validate:"required,gte=1,lte=13"`
	ClassHomeroomTeacherID *string `json:"class_homeroom_teacher_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *CreateClassRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateClassRequest) ToModel() (*m.ClassModel, error) {
	row := &m.ClassModel{
		ClassName:     strings.TrimSpace(r.ClassName),
		ClassGrade:    r.ClassGrade,
		ClassIsActive: true,
	}
	if r.ClassHomeroomTeacherID != nil {
		id, err := uuid.Parse(*r.ClassHomeroomTeacherID)
		if err != nil {
			return nil, err
		}
		row.ClassHomeroomTeacherID = &id
	}
	return row, nil
}

type PatchClassRequest struct {
	ClassName  *string `json:"class_name,omitempty"  validate:"omitempty,min=1"`
	ClassGrade *int    `json:"class_grade,omitempty" validate:"omitempty,gte=1,lte=13"`
	// "" melepas wali kelas
	ClassHomeroomTeacherID *string `json:"class_homeroom_teacher_id,omitempty" validate:"omitempty,uuid4|len=0"`
	ClassIsActive          *bool   `json:"class_is_active,omitempty"`
}

func (r *PatchClassRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchClassRequest) ApplyPatch(dst *m.ClassModel) error {
	if r.ClassName != nil {
		dst.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassGrade != nil {
		dst.ClassGrade = *r.ClassGrade
	}
	if r.ClassHomeroomTeacherID != nil {
		if *r.ClassHomeroomTeacherID == "" {
			dst.ClassHomeroomTeacherID = nil
		} else {
			id, err := uuid.Parse(*r.ClassHomeroomTeacherID)
			if err != nil {
				return err
			}
			dst.ClassHomeroomTeacherID = &id
		}
	}
	if r.ClassIsActive != nil {
		dst.ClassIsActive = *r.ClassIsActive
	}
	return nil
}
