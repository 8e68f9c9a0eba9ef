package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	meetingcontroller "miescuela_backend/internals/features/school/meetings/controller"
)

// MeetingTeacherRoutes: meeting recording and statistics, teacher group.
func MeetingTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := meetingcontroller.NewMeetingController(db)

	r.Post("/meetings/bulk", ctrl.BulkRecordMeetingAttendance)
	r.Get("/meetings/history", ctrl.GetCourseMeetingAttendance)
	r.Get("/meetings/detail", ctrl.GetMeetingDetail)
	r.Get("/meetings/statistics", ctrl.GetMeetingStatistics)
}

// MeetingParentRoutes: read-only meeting history for apoderados, scoped
// to the caller's own records.
func MeetingParentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := meetingcontroller.NewMeetingController(db)

	r.Get("/meetings/history", ctrl.GetMyMeetingAttendance)
}
