package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	escolaCtl "melodia_backend/internals/features/escolas/escola/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

// EscolaOwnerRoutes: montado em /owner (provisionamento da plataforma).
func EscolaOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := escolaCtl.NewEscolaController(db)

	r.Post("/escolas/create-access", authMw.OnlyOwner(), ctl.CreateAccess)
	r.Get("/escolas", authMw.OnlyOwner(), ctl.List)
}

// EscolaRoutes: montado em /api (membros autenticados da escola).
func EscolaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := escolaCtl.NewEscolaController(db)

	g := r.Group("/escolas")
	g.Get("/by-slug/:slug", ctl.GetBySlug)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Post("/:id/logo", ctl.UploadLogo)
}
