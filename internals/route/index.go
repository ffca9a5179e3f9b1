package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "melodia_backend/internals/middlewares/auth"
	routeDetails "melodia_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Montando rotas públicas (/auth)...")
	public := app.Group("/auth")
	routeDetails.UsersPublicRoutes(public, db)

	// ===================== PRIVATE =====================
	// O webhook do Midtrans vive em /api mas está na lista de exceções
	// do AuthMiddleware, então entra sem token.
	log.Println("[INFO] Montando rotas privadas (/api)...")
	api := app.Group("/api", authMw.AuthMiddleware(db))
	routeDetails.UsersPrivateRoutes(api, db)
	routeDetails.EscolasPrivateRoutes(api, db)
	routeDetails.AcademicoRoutes(api, db)
	routeDetails.FinanceiroRoutes(api, db)
	routeDetails.ChatRoutes(api, db)
	routeDetails.RelatorioRoutes(api, db)

	// ===================== OWNER =====================
	log.Println("[INFO] Montando rotas de owner (/owner)...")
	owner := app.Group("/owner", authMw.AuthMiddleware(db))
	routeDetails.EscolasOwnerRoutes(owner, db)
}
