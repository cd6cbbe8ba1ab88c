// file: internals/features/school/academics/subjects/route/subject_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	subjectController "sekolahku_backend/internals/features/school/academics/subjects/controller"
	masterAuth "sekolahku_backend/internals/middlewares/auth"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.New(db, validator.New())

	subjects := r.Group("/subjects", masterAuth.OnlyRoles(
		constants.RoleErrorAdmin("mengelola data mapel"),
		constants.AdminOnly...,
	))
	subjects.Post("/", ctrl.Create)
	subjects.Patch("/:id", ctrl.Patch)
	subjects.Delete("/:id", ctrl.Delete)
}

func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subjectController.New(db, validator.New())
	r.Get("/subjects", ctrl.List)
}
