// file: internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	teacherController "sekolahku_backend/internals/features/school/teachers/controller"
	masterAuth "sekolahku_backend/internals/middlewares/auth"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.New(db, validator.New())

	teachers := r.Group("/teachers", masterAuth.OnlyRoles(
		constants.RoleErrorAdmin("mengelola data guru"),
		constants.AdminOnly...,
	))
	teachers.Post("/", ctrl.Create)
	teachers.Patch("/:id", ctrl.Patch)
	teachers.Delete("/:id", ctrl.Delete)
}

func TeacherUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := teacherController.New(db, validator.New())
	r.Get("/teachers", ctrl.List)
}
