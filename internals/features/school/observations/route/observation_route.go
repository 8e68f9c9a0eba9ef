package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	observationcontroller "miescuela_backend/internals/features/school/observations/controller"
)

func ObservationTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := observationcontroller.NewObservationController(db)

	r.Post("/observations", ctrl.CreateObservation)
}

func ObservationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := observationcontroller.NewObservationController(db)

	r.Get("/observations", ctrl.GetObservations)
}
