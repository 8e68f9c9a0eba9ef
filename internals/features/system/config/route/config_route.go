package route

import (
	"github.com/gofiber/fiber/v2"

	configcontroller "miescuela_backend/internals/features/system/config/controller"
)

func ConfigUserRoutes(r fiber.Router) {
	ctrl := configcontroller.NewConfigController()

	cfg := r.Group("/config")
	cfg.Get("/levels", ctrl.GetLevels)
	cfg.Get("/grades", ctrl.GetGrades)
	cfg.Get("/subjects", ctrl.GetSubjects)
	cfg.Get("/features/:feature", ctrl.GetFeatureVisibility)

	r.Get("/navigation", ctrl.GetNavigation)
}
