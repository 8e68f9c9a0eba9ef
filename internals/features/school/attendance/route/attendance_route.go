package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendancecontroller "miescuela_backend/internals/features/school/attendance/controller"
)

// AttendanceTeacherRoutes: daily attendance recording, teacher group.
func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendancecontroller.NewAttendanceController(db)

	r.Post("/attendance/bulk", ctrl.BulkRecordAttendance)
}

// AttendanceUserRoutes: attendance reads for any authenticated role.
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendancecontroller.NewAttendanceController(db)

	r.Get("/attendance", ctrl.GetAttendance)
}
