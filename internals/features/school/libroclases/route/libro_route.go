package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	librocontroller "miescuela_backend/internals/features/school/libroclases/controller"
	"miescuela_backend/internals/middlewares"
)

// LibroClasesTeacherRoutes mounts the PDF export. Each call spins up a
// headless browser, so it sits behind its own limiter.
func LibroClasesTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := librocontroller.NewExportController(db)

	r.Get("/libro-clases/export", middlewares.ExportRateLimiter(), ctrl.ExportLibroClases)
}
