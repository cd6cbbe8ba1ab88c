// file: internals/features/school/academics/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/academics/rooms/dto"
	m "sekolahku_backend/internals/features/school/academics/rooms/model"
	helper "sekolahku_backend/internals/helpers"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

type pgSQLErr interface{ SQLState() string }

func writeDBError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return helper.JsonError(c, http.StatusConflict, "Nama ruang sudah dipakai")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	var rows []m.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("room_name ASC").Find(&rows).Error; err != nil {
		return writeDBError(c, err)
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req d.CreateRoomRequest
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
	return helper.JsonCreated(c, "Ruang berhasil ditambahkan", row)
}

func (ctl *RoomController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	var req d.PatchRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("room_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return writeDBError(c, err)
	}

	req.ApplyPatch(&row)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return writeDBError(c, err)
	}
	return helper.JsonUpdated(c, "Ruang berhasil diperbarui", row)
}

func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "id invalid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("room_id = ?", id).Delete(&m.RoomModel{})
	if res.Error != nil {
		return writeDBError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "room not found")
	}
	return helper.JsonDeleted(c, "Ruang berhasil dihapus", fiber.Map{"room_id": id})
}
