package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
)

// SetupMiddlewares wires the app-wide middleware chain. Order matters:
// recovery first so panics in the rest of the chain are still caught.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setting up middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(fiberLogger.New(fiberLogger.Config{
		Format: "[HTTP] ${time} | ${status} | ${latency} | ${ip} | ${method} ${path}\n",
	}))
	app.Use(GlobalRateLimiter())
}
