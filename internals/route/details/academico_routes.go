package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alunoRoute "melodia_backend/internals/features/academico/alunos/route"
	chamadaRoute "melodia_backend/internals/features/academico/chamadas/route"
	cursoRoute "melodia_backend/internals/features/academico/cursos/route"
	professorRoute "melodia_backend/internals/features/academico/professores/route"
	turmaRoute "melodia_backend/internals/features/academico/turmas/route"
)

// AcademicoRoutes: cursos, professores, alunos, turmas e chamadas.
func AcademicoRoutes(r fiber.Router, db *gorm.DB) {
	cursoRoute.CursoRoutes(r, db)
	professorRoute.ProfessorRoutes(r, db)
	alunoRoute.AlunoRoutes(r, db)
	turmaRoute.TurmaRoutes(r, db)
	chamadaRoute.ChamadaRoutes(r, db)
}
