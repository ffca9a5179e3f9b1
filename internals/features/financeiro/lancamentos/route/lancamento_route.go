package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lancCtl "melodia_backend/internals/features/financeiro/lancamentos/controller"
	authMw "melodia_backend/internals/middlewares/auth"
)

// FinanceiroRoutes: tudo atrás de admin, exceto o webhook do Midtrans,
// que entra sem token (o path está na lista de exceções do AuthMiddleware).
func FinanceiroRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lancCtl.NewLancamentoController(db)

	g := r.Group("/financeiro")
	g.Post("/notificacao-pagamento", ctl.NotificacaoPagamento)

	adm := g.Group("", authMw.OnlyAdmin())
	adm.Get("/lancamentos", ctl.List)
	adm.Get("/lancamentos/:id", ctl.GetByID)
	adm.Post("/lancamentos", ctl.Create)
	adm.Put("/lancamentos/:id", ctl.Update)
	adm.Delete("/lancamentos/:id", ctl.Cancelar)
	adm.Post("/lancamentos/:id/pagar", ctl.MarcarPago)
	adm.Post("/lancamentos/:id/link-pagamento", ctl.GerarLinkPagamento)

	adm.Post("/mensalidades", ctl.GerarMensalidades)
	adm.Get("/resumo", ctl.Resumo)
	adm.Get("/serie-mensal", ctl.SerieMensal)
	adm.Post("/varrer-atrasados", ctl.VarrerAtrasados)
}
