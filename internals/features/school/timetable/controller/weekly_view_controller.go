// file: internals/features/school/timetable/controller/weekly_view_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "sekolahku_backend/internals/helpers"

	roomModel "sekolahku_backend/internals/features/school/academics/rooms/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	d "sekolahku_backend/internals/features/school/timetable/dto"
	m "sekolahku_backend/internals/features/school/timetable/model"
	svc "sekolahku_backend/internals/features/school/timetable/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type WeeklyViewController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Store    *svc.GormEntryStore
}

func NewWeeklyView(db *gorm.DB, v *validator.Validate) *WeeklyViewController {
	return &WeeklyViewController{
		DB:       db,
		Validate: v,
		Store:    svc.NewGormEntryStore(db),
	}
}

/* =========================
   Weekly view (per guru / kelas / ruang)
   ========================= */

type weeklyQuery struct {
	TermID    string `query:"term_id"`
	TeacherID string `query:"teacher_id"`
	ClassID   string `query:"class_id"`
	RoomID    string `query:"room_id"`
}

// Weekly membangun grid mingguan untuk tepat satu resource. Selalu
// diturunkan ulang dari repository (tidak ada cache).
func (ctl *WeeklyViewController) Weekly(c *fiber.Ctx) error {
	var q weeklyQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if strings.TrimSpace(q.TermID) == "" {
		return helper.JsonError(c, http.StatusBadRequest, "term_id is required")
	}
	termID, err := uuid.Parse(q.TermID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "term_id invalid")
	}

	// tepat satu dimensi
	set := 0
	for _, v := range []string{q.TeacherID, q.ClassID, q.RoomID} {
		if strings.TrimSpace(v) != "" {
			set++
		}
	}
	if set != 1 {
		return helper.JsonError(c, http.StatusBadRequest, "exactly one of teacher_id, class_id, room_id is required")
	}

	var (
		dim          svc.Dimension
		resourceID   uuid.UUID
		resourceName string
		filter       svc.ViewFilter
	)

	switch {
	case q.TeacherID != "":
		resourceID, err = uuid.Parse(q.TeacherID)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		dim = svc.DimensionTeacher
		filter.TeacherID = &resourceID

		var t teacherModel.TeacherModel
		if err := ctl.DB.WithContext(c.UserContext()).
			Where("teacher_id = ?", resourceID).First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, http.StatusNotFound, "teacher not found")
			}
			code, msg := mapPGError(err)
			return helper.JsonError(c, code, msg)
		}
		resourceName = t.TeacherName

	case q.ClassID != "":
		resourceID, err = uuid.Parse(q.ClassID)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "class_id invalid")
		}
		dim = svc.DimensionClass
		filter.ClassID = &resourceID

		var cl classModel.ClassModel
		if err := ctl.DB.WithContext(c.UserContext()).
			Where("class_id = ?", resourceID).First(&cl).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, http.StatusNotFound, "class not found")
			}
			code, msg := mapPGError(err)
			return helper.JsonError(c, code, msg)
		}
		resourceName = cl.ClassName

	default:
		resourceID, err = uuid.Parse(q.RoomID)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "room_id invalid")
		}
		dim = svc.DimensionRoom
		filter.RoomID = &resourceID

		var r roomModel.RoomModel
		if err := ctl.DB.WithContext(c.UserContext()).
			Where("room_id = ?", resourceID).First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, http.StatusNotFound, "room not found")
			}
			code, msg := mapPGError(err)
			return helper.JsonError(c, code, msg)
		}
		resourceName = r.RoomName
	}

	slots, daysPerWeek, err := ctl.resolveSlots(c, filter.ClassID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	entries, err := ctl.Store.ListTermDetailed(c.UserContext(), termID, filter)
	if err != nil {
		code, msg := mapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	view, err := svc.BuildWeeklyView(entries, slots, daysPerWeek, dim, resourceID, resourceName)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", view)
}

// resolveSlots memuat konfigurasi slot: settings per kelas dulu (kalau view
// per kelas), lalu default sekolah, terakhir DefaultSlots bawaan.
func (ctl *WeeklyViewController) resolveSlots(c *fiber.Ctx, classID *uuid.UUID) ([]svc.Slot, int, error) {
	var settings m.TimetableSettingsModel

	if classID != nil {
		err := ctl.DB.WithContext(c.UserContext()).
			Where("timetable_settings_class_id = ?", *classID).
			First(&settings).Error
		if err == nil {
			slots, perr := d.SlotsFromJSON(settings.TimetableSettingsSlots)
			if perr != nil {
				return nil, 0, perr
			}
			return slots, settings.TimetableSettingsDaysPerWeek, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, err
		}
	}

	err := ctl.DB.WithContext(c.UserContext()).
		Where("timetable_settings_is_default = TRUE").
		First(&settings).Error
	if err == nil {
		slots, perr := d.SlotsFromJSON(settings.TimetableSettingsSlots)
		if perr != nil {
			return nil, 0, perr
		}
		return slots, settings.TimetableSettingsDaysPerWeek, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	return svc.DefaultSlots(), 5, nil
}

/* =========================
   Settings (konfigurasi slot display)
   ========================= */

func (ctl *WeeklyViewController) UpsertSettings(c *fiber.Ctx) error {
	var req d.UpsertTimetableSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := req.Validate(ctl.Validate); err != nil {
			return writeValidationError(c, err)
		}
	}

	next, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var existing m.TimetableSettingsModel
		q := tx.Model(&m.TimetableSettingsModel{})
		if next.TimetableSettingsClassID != nil {
			q = q.Where("timetable_settings_class_id = ?", *next.TimetableSettingsClassID)
		} else {
			q = q.Where("timetable_settings_class_id IS NULL")
		}
		if err := q.First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(next).Error
			}
			return err
		}
		existing.TimetableSettingsDaysPerWeek = next.TimetableSettingsDaysPerWeek
		existing.TimetableSettingsSlots = next.TimetableSettingsSlots
		existing.TimetableSettingsIsDefault = next.TimetableSettingsIsDefault
		*next = existing
		return tx.Save(&existing).Error
	})
	if err != nil {
		code, msg := mapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonUpdated(c, "Pengaturan grid disimpan", next)
}

func (ctl *WeeklyViewController) GetSettings(c *fiber.Ctx) error {
	var rows []m.TimetableSettingsModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("timetable_settings_is_default DESC, timetable_settings_created_at ASC").
		Find(&rows).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "ok", rows)
}
