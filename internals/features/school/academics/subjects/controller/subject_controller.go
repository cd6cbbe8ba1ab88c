// file: internals/features/school/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/academics/subjects/dto"
	m "sekolahku_backend/internals/features/school/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

type pgSQLErr interface{ SQLState() string }

func writeDBError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return helper.JsonError(c, http.StatusConflict, "Kode mapel sudah dipakai")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	var rows []m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("subject_name ASC").Find(&rows).Error; err != nil {
		return writeDBError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return writeDBError(c, err)
	}
	return helper.JsonCreated(c, "Mapel berhasil ditambahkan", row)
}

func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.PatchSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return writeDBError(c, err)
	}

	req.ApplyPatch(&row)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return writeDBError(c, err)
	}
	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", row)
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ?", id).Delete(&m.SubjectModel{})
	if res.Error != nil {
		return writeDBError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "subject not found")
	}
	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": id})
}
