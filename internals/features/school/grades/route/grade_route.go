package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradecontroller "miescuela_backend/internals/features/school/grades/controller"
)

// GradeTeacherRoutes: grade entry, teacher group.
func GradeTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradecontroller.NewGradeController(db)

	r.Post("/grades", ctrl.CreateGrade)
}

// GradeUserRoutes: grade reads for any authenticated role.
func GradeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradecontroller.NewGradeController(db)

	r.Get("/grades", ctrl.GetGrades)
	r.Get("/grades/summary", ctrl.GetStudentSummary)
}
