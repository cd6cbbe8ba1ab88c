// file: internals/features/school/academics/rooms/route/room_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	roomController "sekolahku_backend/internals/features/school/academics/rooms/controller"
	masterAuth "sekolahku_backend/internals/middlewares/auth"
)

func RoomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := roomController.New(db, validator.New())

	rooms := r.Group("/rooms", masterAuth.OnlyRoles(
		constants.RoleErrorAdmin("mengelola data ruang"),
		constants.AdminOnly...,
	))
	rooms.Post("/", ctrl.Create)
	rooms.Patch("/:id", ctrl.Patch)
	rooms.Delete("/:id", ctrl.Delete)
}

func RoomUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := roomController.New(db, validator.New())
	r.Get("/rooms", ctrl.List)
}
