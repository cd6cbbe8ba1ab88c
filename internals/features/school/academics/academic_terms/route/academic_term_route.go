// file: internals/features/school/academics/academic_terms/route/academic_term_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	termController "sekolahku_backend/internals/features/school/academics/academic_terms/controller"
	masterAuth "sekolahku_backend/internals/middlewares/auth"
)

func AcademicTermAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := termController.New(db, validator.New())

	terms := r.Group("/academic-terms", masterAuth.OnlyRoles(
		constants.RoleErrorAdmin("mengelola academic term"),
		constants.AdminOnly...,
	))
	terms.Post("/", ctrl.Create)
	terms.Patch("/:id", ctrl.Patch)
	terms.Post("/:id/activate", ctrl.Activate)
}

func AcademicTermUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := termController.New(db, validator.New())
	r.Get("/academic-terms", ctrl.List)
}
