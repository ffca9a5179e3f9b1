package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alunoCtl "melodia_backend/internals/features/academico/alunos/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

// AlunoRoutes: leitura para equipe, escrita para admin/professor.
func AlunoRoutes(r fiber.Router, db *gorm.DB) {
	ctl := alunoCtl.NewAlunoController(db)

	g := r.Group("/alunos", authMw.OnlyEquipe())
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Post("/:id/foto", ctl.UploadFoto)
	g.Delete("/:id", authMw.OnlyAdmin(), ctl.Delete)
}
