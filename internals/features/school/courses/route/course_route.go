package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursecontroller "miescuela_backend/internals/features/school/courses/controller"
)

// CourseAdminRoutes: course and enrollment management, admin group.
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := coursecontroller.NewCourseController(db)

	r.Post("/courses", ctrl.CreateCourse)
	r.Put("/courses/:id", ctrl.UpdateCourse)
	r.Delete("/courses/:id", ctrl.DeleteCourse)
	r.Post("/courses/:id/enroll", ctrl.EnrollStudent)
	r.Post("/students", ctrl.CreateStudent)
}

// CourseUserRoutes: read-only course access for any authenticated role.
func CourseUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := coursecontroller.NewCourseController(db)

	r.Get("/courses", ctrl.GetCourses)
	r.Get("/courses/:id", ctrl.GetCourseById)
}
