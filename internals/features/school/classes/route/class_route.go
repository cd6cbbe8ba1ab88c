// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classController "sekolahku_backend/internals/features/school/classes/controller"
	masterAuth "sekolahku_backend/internals/middlewares/auth"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.New(db, validator.New())

	classes := r.Group("/classes", masterAuth.OnlyRoles(
		constants.RoleErrorAdmin("mengelola data kelas"),
		constants.AdminOnly...,
	))
	classes.Post("/", ctrl.Create)
	classes.Patch("/:id", ctrl.Patch)
	classes.Delete("/:id", ctrl.Delete)
}

func ClassUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.New(db, validator.New())
	r.Get("/classes", ctrl.List)
}
