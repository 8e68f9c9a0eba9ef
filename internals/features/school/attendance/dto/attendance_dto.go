package dto

import (
	"time"

	"github.com/google/uuid"

	m "miescuela_backend/internals/features/school/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type AttendanceEntry struct {
	StudentId uuid.UUID `json:"student_id" validate:"required,uuid4"`
	Status    string    `json:"status" validate:"required,oneof=PRESENTE AUSENTE ATRASADO JUSTIFICADO RETIRADO"`
	Comment   *string   `json:"comment" validate:"omitempty,max=300"`
}

// BulkRecordAttendanceRequest records one course day in a single batch.
type BulkRecordAttendanceRequest struct {
	CourseId uuid.UUID         `json:"course_id" validate:"required,uuid4"`
	Date     time.Time         `json:"date" validate:"required"`
	Entries  []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type FilterAttendanceRequest struct {
	CourseId  *uuid.UUID `query:"course_id" validate:"omitempty,uuid4"`
	StudentId *uuid.UUID `query:"student_id" validate:"omitempty,uuid4"`
	From      *time.Time `query:"from" validate:"omitempty"`
	To        *time.Time `query:"to" validate:"omitempty"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceResponse struct {
	AttendanceId        uuid.UUID `json:"attendance_id"`
	AttendanceCourseId  uuid.UUID `json:"attendance_course_id"`
	AttendanceStudentId uuid.UUID `json:"attendance_student_id"`
	AttendanceDate      time.Time `json:"attendance_date"`
	AttendanceStatus    string    `json:"attendance_status"`
	AttendanceLetter    string    `json:"attendance_letter"`
	AttendanceComment   *string   `json:"attendance_comment,omitempty"`
	AttendanceCreatedAt time.Time `json:"attendance_created_at"`
}

func NewAttendanceResponse(mdl m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceId:        mdl.AttendanceId,
		AttendanceCourseId:  mdl.AttendanceCourseId,
		AttendanceStudentId: mdl.AttendanceStudentId,
		AttendanceDate:      mdl.AttendanceDate,
		AttendanceStatus:    mdl.AttendanceStatus,
		AttendanceLetter:    m.LetterCode(mdl.AttendanceStatus),
		AttendanceComment:   mdl.AttendanceComment,
		AttendanceCreatedAt: mdl.AttendanceCreatedAt,
	}
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r BulkRecordAttendanceRequest) ToModels(registeredBy uuid.UUID) []m.AttendanceModel {
	out := make([]m.AttendanceModel, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, m.AttendanceModel{
			AttendanceCourseId:     r.CourseId,
			AttendanceStudentId:    e.StudentId,
			AttendanceDate:         r.Date,
			AttendanceStatus:       e.Status,
			AttendanceComment:      e.Comment,
			AttendanceRegisteredBy: registeredBy,
		})
	}
	return out
}
