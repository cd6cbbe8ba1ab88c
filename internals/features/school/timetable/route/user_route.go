// file: internals/features/school/timetable/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableController "sekolahku_backend/internals/features/school/timetable/controller"
)

// TimetableUserRoutes — endpoint baca jadwal (semua user login).
func TimetableUserRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	entryCtrl := timetableController.New(db, v)
	viewCtrl := timetableController.NewWeeklyView(db, v)

	timetable := r.Group("/timetable")
	timetable.Get("/weekly", viewCtrl.Weekly)

	entries := r.Group("/timetable-entries")
	entries.Get("/", entryCtrl.List)
	entries.Get("/:id", entryCtrl.GetByID)
}
