package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cursoCtl "melodia_backend/internals/features/academico/cursos/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

// CursoRoutes: montado em /api (autenticado). Escrita só para admin.
func CursoRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cursoCtl.NewCursoController(db)

	g := r.Group("/cursos")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", authMw.OnlyAdmin(), ctl.Create)
	g.Put("/:id", authMw.OnlyAdmin(), ctl.Update)
	g.Delete("/:id", authMw.OnlyAdmin(), ctl.Delete)
}
