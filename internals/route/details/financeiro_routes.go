package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lancRoute "melodia_backend/internals/features/financeiro/lancamentos/route"
)

// FinanceiroRoutes: lançamentos, mensalidades e webhook de pagamento.
func FinanceiroRoutes(r fiber.Router, db *gorm.DB) {
	lancRoute.FinanceiroRoutes(r, db)
}
