// file: internals/features/school/timetable/controller/timetable_entry_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "sekolahku_backend/internals/helpers"

	d "sekolahku_backend/internals/features/school/timetable/dto"
	m "sekolahku_backend/internals/features/school/timetable/model"
	svc "sekolahku_backend/internals/features/school/timetable/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableEntryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.TimetableService
}

func New(db *gorm.DB, v *validator.Validate) *TimetableEntryController {
	return &TimetableEntryController{
		DB:       db,
		Validate: v,
		Service:  svc.NewTimetableService(svc.NewGormEntryStore(db)),
	}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23P01 = exclusion_violation (jaring pengaman bentrok di DB)
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Bentrok jadwal: time range overlap (race terdeteksi di DB)."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// writeValidationError merender kegagalan validasi struct sebagai 422
// dengan peta field → pesan. Error non-validator jatuh ke 400 biasa.
func writeValidationError(c *fiber.Ctx, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make(map[string][]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			out[fe.Field()] = append(out[fe.Field()], fmt.Sprintf("failed on '%s'", fe.Tag()))
		}
		return helper.JsonValidationError(c, out)
	}
	return helper.JsonError(c, http.StatusBadRequest, err.Error())
}

// writeServiceError memetakan taksonomi error engine ke response JSON.
// Bentrok bukan fault: 409 + daftar konflik terklasifikasi supaya FE bisa
// merender dimensi mana yang tabrakan.
func writeServiceError(c *fiber.Ctx, err error) error {
	var vErr *svc.ValidationError
	if errors.As(err, &vErr) {
		return helper.JsonError(c, http.StatusBadRequest, vErr.Error())
	}
	var nfErr *svc.NotFoundError
	if errors.As(err, &nfErr) {
		return helper.JsonError(c, http.StatusNotFound, nfErr.Error())
	}
	var cErr *svc.ConflictError
	if errors.As(err, &cErr) {
		return helper.JsonErrorWithData(c, http.StatusConflict, cErr.Error(), fiber.Map{
			"conflicts": d.NewConflictItemResponses(cErr.Conflicts),
		})
	}
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

/* =========================
   Create
   ========================= */

func (ctl *TimetableEntryController) Create(c *fiber.Ctx) error {
	var req d.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[TimetableEntry.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := req.Validate(ctl.Validate); err != nil {
			return writeValidationError(c, err)
		}
	}

	entry, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if _, err := ctl.Service.Create(c.UserContext(), entry); err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, "Entri jadwal dibuat", d.NewTimetableEntryResponse(entry))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *TimetableEntryController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.PatchTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := req.Validate(ctl.Validate); err != nil {
			return writeValidationError(c, err)
		}
	}

	updated, err := ctl.Service.Update(c.UserContext(), id, req.ApplyPatch)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonUpdated(c, "Entri jadwal diperbarui", d.NewTimetableEntryResponse(updated))
}

/* =========================
   Delete
   ========================= */

func (ctl *TimetableEntryController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	summary, err := ctl.Service.Delete(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Entri jadwal dihapus", summary)
}

/* =========================
   Check (dry-run bentrok)
   ========================= */

// Check menjalankan pengecekan bentrok tanpa menyimpan apa pun.
// ?exclude_id= dipakai FE saat mengedit entri existing.
func (ctl *TimetableEntryController) Check(c *fiber.Ctx) error {
	var req d.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := req.Validate(ctl.Validate); err != nil {
			return writeValidationError(c, err)
		}
	}

	candidate, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var excludeID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("exclude_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "exclude_id invalid")
		}
		excludeID = &id
	}

	conflicts, err := ctl.Service.CheckConflicts(c.UserContext(), candidate, excludeID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonOK(c, "Hasil cek bentrok", fiber.Map{
		"has_conflict": len(conflicts) > 0,
		"conflicts":    d.NewConflictItemResponses(conflicts),
	})
}

/* =========================
   Query: GetByID & List
   ========================= */

func (ctl *TimetableEntryController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	entry, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", d.NewTimetableEntryResponse(entry))
}

type listQueryEntries struct {
	TermID    string `query:"term_id"`
	TeacherID string `query:"teacher_id"`
	ClassID   string `query:"class_id"`
	RoomID    string `query:"room_id"`
	DayOfWeek *int   `query:"dow"` // 1..7
}

func (ctl *TimetableEntryController) List(c *fiber.Ctx) error {
	var q listQueryEntries
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

	db := ctl.DB.WithContext(c.UserContext()).Model(&m.TimetableEntryModel{}).
		Where("timetable_entry_term_id = ?", termID)

	if q.TeacherID != "" {
		if _, err := uuid.Parse(q.TeacherID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		db = db.Where("timetable_entry_teacher_id = ?", q.TeacherID)
	}
	if q.ClassID != "" {
		if _, err := uuid.Parse(q.ClassID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "class_id invalid")
		}
		db = db.Where("timetable_entry_class_id = ?", q.ClassID)
	}
	if q.RoomID != "" {
		if _, err := uuid.Parse(q.RoomID); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "room_id invalid")
		}
		db = db.Where("timetable_entry_room_id = ?", q.RoomID)
	}
	if q.DayOfWeek != nil {
		if *q.DayOfWeek < 1 || *q.DayOfWeek > 7 {
			return helper.JsonError(c, http.StatusBadRequest, "dow must be 1..7")
		}
		db = db.Where("timetable_entry_day_of_week = ?", *q.DayOfWeek)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	var rows []m.TimetableEntryModel
	if err := db.
		Order("timetable_entry_day_of_week ASC, timetable_entry_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		code, msg := mapPGError(err)
		return helper.JsonError(c, code, msg)
	}

	resp := make([]d.TimetableEntryResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, d.NewTimetableEntryResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}
