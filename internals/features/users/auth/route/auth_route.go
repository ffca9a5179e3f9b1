package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "melodia_backend/internals/features/users/auth/controller"
	"melodia_backend/internals/middlewares"
	authMw "melodia_backend/internals/middlewares/auth"
)

// AuthPublicRoutes: montado em /auth, sem AuthMiddleware.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)
	convite := authCtl.NewConviteController(db)

	r.Post("/register", middlewares.LoginRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	r.Post("/refresh", ctl.Refresh)
	r.Post("/aceitar-convite", convite.Aceitar)
}

// AuthPrivateRoutes: montado em /api, atrás do AuthMiddleware.
func AuthPrivateRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)
	convite := authCtl.NewConviteController(db)

	r.Post("/auth/logout", ctl.Logout)
	r.Get("/me", ctl.Me)
	r.Post("/convites", authMw.OnlyAdmin(), convite.Invite)
}
