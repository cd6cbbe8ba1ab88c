// file: internals/features/school/timetable/controller/timetable_entry_controller_test.go
package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	d "sekolahku_backend/internals/features/school/timetable/dto"
	m "sekolahku_backend/internals/features/school/timetable/model"
	svc "sekolahku_backend/internals/features/school/timetable/service"
)

func errApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return writeServiceError(c, err)
	})
	return app
}

func doGet(t *testing.T, app *fiber.App) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/t", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, sonic.Unmarshal(raw, &body))
	return resp, body
}

func TestWriteServiceErrorMapping(t *testing.T) {
	t.Run("validation → 400", func(t *testing.T) {
		err := &svc.ValidationError{Field: "timetable_entry_end_time", Reason: "must be greater than start_time"}
		resp, body := doGet(t, errApp(err))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, body["success"])
	})

	t.Run("not found → 404", func(t *testing.T) {
		err := &svc.NotFoundError{Resource: "timetable_entry", ID: uuid.New()}
		resp, _ := doGet(t, errApp(err))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("conflict → 409 dengan daftar konflik", func(t *testing.T) {
		other := svc.EntryDetail{Entry: m.TimetableEntryModel{TimetableEntryID: uuid.New()}}
		err := &svc.ConflictError{Conflicts: []svc.Conflict{
			{Type: svc.ConflictTeacher, Entry: other, Description: "guru bentrok"},
		}}
		resp, body := doGet(t, errApp(err))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		conflicts, ok := data["conflicts"].([]interface{})
		require.True(t, ok)
		assert.Len(t, conflicts, 1)
	})

	t.Run("error lain → 500", func(t *testing.T) {
		resp, _ := doGet(t, errApp(assert.AnError))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

// Patch yang menggeser start melewati end existing harus berujung 400,
// bukan 500: ApplyPatch mengembalikan ValidationError yang dikenali mapper.
func TestWriteServiceErrorFromPatchMerge(t *testing.T) {
	entry := &m.TimetableEntryModel{
		TimetableEntryStartTime: time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC),
		TimetableEntryEndTime:   time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	start := "10:00"
	req := d.PatchTimetableEntryRequest{TimetableEntryStartTime: &start}

	err := req.ApplyPatch(entry)
	require.Error(t, err)

	resp, _ := doGet(t, errApp(err))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWriteValidationErrorRendersFieldMap(t *testing.T) {
	v := validator.New()
	var req d.CreateTimetableEntryRequest // semua required kosong
	err := req.Validate(v)
	require.Error(t, err)

	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return writeValidationError(c, err)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/t", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, sonic.Unmarshal(raw, &body))
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, errs)
}
