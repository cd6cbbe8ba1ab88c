// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomRoute "sekolahku_backend/internals/features/school/academics/rooms/route"
	subjectRoute "sekolahku_backend/internals/features/school/academics/subjects/route"
	termRoute "sekolahku_backend/internals/features/school/academics/academic_terms/route"
	classRoute "sekolahku_backend/internals/features/school/classes/route"
	teacherRoute "sekolahku_backend/internals/features/school/teachers/route"
	timetableRoute "sekolahku_backend/internals/features/school/timetable/route"
	masterAuth "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// /api/a → endpoint tulis (role dicek per-route)
	admin := app.Group("/api/a", masterAuth.AuthMiddleware())

	// /api/u → endpoint baca, cukup login
	user := app.Group("/api/u", masterAuth.AuthMiddleware())

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Timetable routes...")
	timetableRoute.TimetableAdminRoutes(admin, db)
	timetableRoute.TimetableUserRoutes(user, db)

	log.Println("[INFO] Mounting Academic Term routes...")
	termRoute.AcademicTermAdminRoutes(admin, db)
	termRoute.AcademicTermUserRoutes(user, db)

	log.Println("[INFO] Mounting Master Data routes...")
	teacherRoute.TeacherAdminRoutes(admin, db)
	teacherRoute.TeacherUserRoutes(user, db)
	classRoute.ClassAdminRoutes(admin, db)
	classRoute.ClassUserRoutes(user, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	subjectRoute.SubjectUserRoutes(user, db)
	roomRoute.RoomAdminRoutes(admin, db)
	roomRoute.RoomUserRoutes(user, db)
}
