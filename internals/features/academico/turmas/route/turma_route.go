package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	turmaCtl "melodia_backend/internals/features/academico/turmas/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

// TurmaRoutes: leitura para qualquer membro da escola, escrita para admin.
func TurmaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := turmaCtl.NewTurmaController(db)

	g := r.Group("/turmas")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/alunos", authMw.OnlyEquipe(), ctl.ListAlunosDaTurma)

	g.Post("/", authMw.OnlyAdmin(), ctl.Create)
	g.Put("/:id", authMw.OnlyAdmin(), ctl.Update)
	g.Delete("/:id", authMw.OnlyAdmin(), ctl.Delete)

	g.Post("/:id/matriculas", authMw.OnlyAdmin(), ctl.Matricular)
	g.Delete("/:id/matriculas/:matricula_id", authMw.OnlyAdmin(), ctl.Desmatricular)

	// visão do aluno a partir do cadastro
	r.Get("/alunos/:id/turmas", authMw.OnlyEquipe(), ctl.ListTurmasDoAluno)
}
