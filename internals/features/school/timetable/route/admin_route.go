// file: internals/features/school/timetable/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	timetableController "sekolahku_backend/internals/features/school/timetable/controller"
	"sekolahku_backend/internals/middlewares"
	masterAuth "sekolahku_backend/internals/middlewares/auth"
)

// TimetableAdminRoutes — endpoint tulis jadwal (owner/admin/teacher).
func TimetableAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	entryCtrl := timetableController.New(db, v)
	viewCtrl := timetableController.NewWeeklyView(db, v)

	guard := masterAuth.OnlyRoles(
		constants.RoleErrorTeacher("mengelola jadwal pelajaran"),
		constants.ScheduleEditors...,
	)

	entries := r.Group("/timetable-entries", guard, middlewares.ScheduleWriteRateLimiter())
	entries.Post("/", entryCtrl.Create)
	entries.Post("/check", entryCtrl.Check)
	entries.Patch("/:id", entryCtrl.Patch)
	entries.Delete("/:id", entryCtrl.Delete)

	settings := r.Group("/timetable-settings", masterAuth.OnlyRoles(
		constants.RoleErrorAdmin("mengubah pengaturan grid jadwal"),
		constants.AdminOnly...,
	))
	settings.Get("/", viewCtrl.GetSettings)
	settings.Put("/", viewCtrl.UpsertSettings)
}
