package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profCtl "melodia_backend/internals/features/academico/professores/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

func ProfessorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := profCtl.NewProfessorController(db)

	g := r.Group("/professores")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", authMw.OnlyAdmin(), ctl.Create)
	g.Put("/:id", authMw.OnlyAdmin(), ctl.Update)
	g.Delete("/:id", authMw.OnlyAdmin(), ctl.Delete)
}
