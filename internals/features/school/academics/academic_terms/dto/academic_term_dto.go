// file: internals/features/school/academics/academic_terms/dto/academic_term_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	m "sekolahku_backend/internals/features/school/academics/academic_terms/model"
)

const dateLayout = "2006-01-02"

/* =========================
   Request DTO
   ========================= */

type CreateAcademicTermRequest struct {
	AcademicTermAcademicYear string `json:"academic_term_academic_year" validate:"required,min=4"`
	AcademicTermName         string `json:"academic_term_name"          validate:"required,min=2"`
	AcademicTermStartDate    string `json:"academic_term_start_date"    validate:"required"`
	AcademicTermEndDate      string `json:"academic_term_end_date"      validate:"required"`
}

func (r *CreateAcademicTermRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateAcademicTermRequest) ToModel() (*m.AcademicTermModel, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(r.AcademicTermStartDate))
	if err != nil {
		return nil, fmt.Errorf("academic_term_start_date: format harus YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(r.AcademicTermEndDate))
	if err != nil {
		return nil, fmt.Errorf("academic_term_end_date: format harus YYYY-MM-DD")
	}
	return &m.AcademicTermModel{
		AcademicTermAcademicYear: strings.TrimSpace(r.AcademicTermAcademicYear),
		AcademicTermName:         strings.TrimSpace(r.AcademicTermName),
		AcademicTermStartDate:    start,
		AcademicTermEndDate:      end,
	}, nil
}

type PatchAcademicTermRequest struct {
	AcademicTermAcademicYear *string `json:"academic_term_academic_year,omitempty" validate:"omitempty,min=4"`
	AcademicTermName         *string `json:"academic_term_name,omitempty"          validate:"omitempty,min=2"`
	AcademicTermStartDate    *string `json:"academic_term_start_date,omitempty"`
	AcademicTermEndDate      *string `json:"academic_term_end_date,omitempty"`
}

func (r *PatchAcademicTermRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *PatchAcademicTermRequest) ApplyPatch(dst *m.AcademicTermModel) error {
	if r.AcademicTermAcademicYear != nil {
		dst.AcademicTermAcademicYear = strings.TrimSpace(*r.AcademicTermAcademicYear)
	}
	if r.AcademicTermName != nil {
		dst.AcademicTermName = strings.TrimSpace(*r.AcademicTermName)
	}
	if r.AcademicTermStartDate != nil {
		start, err := time.Parse(dateLayout, strings.TrimSpace(*r.AcademicTermStartDate))
		if err != nil {
			return fmt.Errorf("academic_term_start_date: format harus YYYY-MM-DD")
		}
		dst.AcademicTermStartDate = start
	}
	if r.AcademicTermEndDate != nil {
		end, err := time.Parse(dateLayout, strings.TrimSpace(*r.AcademicTermEndDate))
		if err != nil {
			return fmt.Errorf("academic_term_end_date: format harus YYYY-MM-DD")
		}
		dst.AcademicTermEndDate = end
	}
	return nil
}

/* =========================
   Response DTO
   ========================= */

type AcademicTermResponse struct {
	AcademicTermID           string `json:"academic_term_id"`
	AcademicTermAcademicYear string `json:"academic_term_academic_year"`
	AcademicTermName         string `json:"academic_term_name"`
	AcademicTermStartDate    string `json:"academic_term_start_date"`
	AcademicTermEndDate      string `json:"academic_term_end_date"`
	AcademicTermIsActive     bool   `json:"academic_term_is_active"`
}

func NewAcademicTermResponse(src *m.AcademicTermModel) *AcademicTermResponse {
	return &AcademicTermResponse{
		AcademicTermID:           src.AcademicTermID.String(),
		AcademicTermAcademicYear: src.AcademicTermAcademicYear,
		AcademicTermName:         src.AcademicTermName,
		AcademicTermStartDate:    src.AcademicTermStartDate.Format(dateLayout),
		AcademicTermEndDate:      src.AcademicTermEndDate.Format(dateLayout),
		AcademicTermIsActive:     src.AcademicTermIsActive,
	}
}

func NewAcademicTermResponses(src []m.AcademicTermModel) []*AcademicTermResponse {
	out := make([]*AcademicTermResponse, 0, len(src))
	for i := range src {
		out = append(out, NewAcademicTermResponse(&src[i]))
	}
	return out
}
