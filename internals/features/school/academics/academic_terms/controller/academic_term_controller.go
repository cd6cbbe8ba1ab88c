// file: internals/features/school/academics/academic_terms/controller/academic_term_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/academics/academic_terms/dto"
	m "sekolahku_backend/internals/features/school/academics/academic_terms/model"
	helper "sekolahku_backend/internals/helpers"
)

type AcademicTermController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AcademicTermController {
	return &AcademicTermController{DB: db, Validate: v}
}

type pgSQLErr interface{ SQLState() string }

func writeDBError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return helper.JsonError(c, http.StatusConflict, "Data dengan kombinasi yang sama sudah ada")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* =========================
   Handlers
   ========================= */

// List mengembalikan semua term, yang aktif paling atas.
func (ctl *AcademicTermController) List(c *fiber.Ctx) error {
	var rows []m.AcademicTermModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("academic_term_is_active DESC, academic_term_start_date DESC").
		Find(&rows).Error; err != nil {
		return writeDBError(c, err)
	}
	return helper.JsonOK(c, "ok", d.NewAcademicTermResponses(rows))
}

func (ctl *AcademicTermController) Create(c *fiber.Ctx) error {
	var req d.CreateAcademicTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return writeDBError(c, err)
	}
	return helper.JsonCreated(c, "Academic term berhasil dibuat", d.NewAcademicTermResponse(row))
}

func (ctl *AcademicTermController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.PatchAcademicTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.AcademicTermModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("academic_term_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "academic term not found")
		}
		return writeDBError(c, err)
	}

	if err := req.ApplyPatch(&row); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return writeDBError(c, err)
	}
	return helper.JsonUpdated(c, "Academic term berhasil diperbarui", d.NewAcademicTermResponse(&row))
}

// Activate menjadikan satu term aktif dan menonaktifkan sisanya dalam
// satu transaksi, supaya tidak pernah ada dua term aktif.
func (ctl *AcademicTermController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var row m.AcademicTermModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("academic_term_id = ?", id).First(&row).Error; err != nil {
			return err
		}
		if err := tx.Model(&m.AcademicTermModel{}).
			Where("academic_term_is_active = TRUE").
			Update("academic_term_is_active", false).Error; err != nil {
			return err
		}
		row.AcademicTermIsActive = true
		return tx.Save(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "academic term not found")
		}
		return writeDBError(c, err)
	}
	return helper.JsonUpdated(c, "Academic term diaktifkan", d.NewAcademicTermResponse(&row))
}
