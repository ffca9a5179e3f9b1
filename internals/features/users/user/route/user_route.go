package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "melodia_backend/internals/features/users/user/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

// UserRoutes: montado em /api (autenticado).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewProfileController(db)

	r.Put("/profile", ctl.UpdateMeu)
	r.Post("/profile/avatar", ctl.UploadAvatar)
	r.Get("/profiles", authMw.OnlyAdmin(), ctl.ListDaEscola)
}
