package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatCtl "melodia_backend/internals/features/chat/conversas/controller"
)

// ChatRoutes: qualquer usuário autenticado; o filtro real é ser participante.
func ChatRoutes(r fiber.Router, db *gorm.DB) {
	ctl := chatCtl.NewConversaController(db)

	g := r.Group("/conversas")
	g.Get("/", ctl.ListMinhas)
	g.Post("/direta", ctl.CriarDireta)
	g.Post("/turma", ctl.CriarDaTurma)
	g.Get("/:id", ctl.GetByID)

	g.Post("/:id/mensagens", ctl.EnviarMensagem)
	g.Get("/:id/mensagens", ctl.ListMensagens)
	g.Delete("/:id/mensagens/:mensagem_id", ctl.ApagarMensagem)

	g.Post("/:id/enquetes", ctl.CriarEnquete)

	e := r.Group("/enquetes")
	e.Get("/:id", ctl.GetEnquete)
	e.Post("/:id/votar", ctl.Votar)
}
