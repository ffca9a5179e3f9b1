package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	relatorioRoute "melodia_backend/internals/features/relatorios/route"
)

// RelatorioRoutes: dashboard, séries e exportações XLSX.
func RelatorioRoutes(r fiber.Router, db *gorm.DB) {
	relatorioRoute.RelatorioRoutes(r, db)
}
