package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	escolaRoute "melodia_backend/internals/features/escolas/escola/route"
)

// EscolasOwnerRoutes: provisionamento de escolas (plataforma).
func EscolasOwnerRoutes(r fiber.Router, db *gorm.DB) {
	escolaRoute.EscolaOwnerRoutes(r, db)
}

// EscolasPrivateRoutes: escola vista pelos próprios membros.
func EscolasPrivateRoutes(r fiber.Router, db *gorm.DB) {
	escolaRoute.EscolaRoutes(r, db)
}
