package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	relCtl "melodia_backend/internals/features/relatorios/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

// RelatorioRoutes: visão gerencial, só admin.
func RelatorioRoutes(r fiber.Router, db *gorm.DB) {
	ctl := relCtl.NewRelatorioController(db)

	g := r.Group("/relatorios", authMw.OnlyAdmin())
	g.Get("/dashboard", ctl.GetDashboard)
	g.Get("/frequencia-por-turma", ctl.FrequenciaPorTurma)
	g.Get("/export/presencas", ctl.ExportPresencas)
	g.Get("/export/lancamentos", ctl.ExportLancamentos)
}
