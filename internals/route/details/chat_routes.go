package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	conversaRoute "melodia_backend/internals/features/chat/conversas/route"
)

// ChatRoutes: conversas, mensagens e enquetes.
func ChatRoutes(r fiber.Router, db *gorm.DB) {
	conversaRoute.ChatRoutes(r, db)
}
