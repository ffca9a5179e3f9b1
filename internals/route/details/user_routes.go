package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "melodia_backend/internals/features/users/auth/route"
	userRoute "melodia_backend/internals/features/users/user/route"
)

// UsersPublicRoutes: login, registro, refresh e aceite de convite.
func UsersPublicRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(r, db)
}

// UsersPrivateRoutes: sessão, perfil e convites.
func UsersPrivateRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthPrivateRoutes(r, db)
	userRoute.UserRoutes(r, db)
}
