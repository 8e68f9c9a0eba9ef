package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classcontentcontroller "miescuela_backend/internals/features/school/classcontent/controller"
)

func ClassContentTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classcontentcontroller.NewClassContentController(db)

	r.Post("/class-contents", ctrl.CreateClassContent)
}

func ClassContentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classcontentcontroller.NewClassContentController(db)

	r.Get("/class-contents", ctrl.GetClassContents)
}
