package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chamadaCtl "melodia_backend/internals/features/academico/chamadas/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

// ChamadaRoutes: professor e admin registram, qualquer membro consulta.
func ChamadaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := chamadaCtl.NewChamadaController(db)

	g := r.Group("/chamadas")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)

	g.Post("/", authMw.OnlyEquipe(), ctl.Abrir)
	g.Put("/:id/presencas", authMw.OnlyEquipe(), ctl.RegistrarPresencas)
	g.Delete("/:id", authMw.OnlyAdmin(), ctl.Delete)

	r.Get("/turmas/:id/frequencia", ctl.FrequenciaDaTurma)
}
