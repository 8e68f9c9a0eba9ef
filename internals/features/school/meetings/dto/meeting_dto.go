package dto

import (
	"time"

	"github.com/google/uuid"

	m "miescuela_backend/internals/features/school/meetings/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type MeetingEntry struct {
	StudentId uuid.UUID `json:"student_id" validate:"required,uuid4"`
	ParentId  uuid.UUID `json:"parent_id" validate:"required,uuid4"`
	Attended  bool      `json:"attended"`

	RepresentativeName *string `json:"representative_name" validate:"omitempty,min=3,max=100"`
	Relationship       *string `json:"relationship" validate:"omitempty,oneof=madre padre abuela abuelo tia tio hermana hermano tutor otro"`

	Observations *string `json:"observations" validate:"omitempty,max=1000"`
	Agreements   *string `json:"agreements" validate:"omitempty,max=1000"`
}

// BulkRecordMeetingRequest saves one full meeting session. A missing
// meeting date or an empty entry list rejects the whole batch before any
// write — mirrored from the client-side rules so the API enforces them too.
type BulkRecordMeetingRequest struct {
	CourseId      uuid.UUID      `json:"course_id" validate:"required,uuid4"`
	MeetingDate   time.Time      `json:"meeting_date" validate:"required"`
	MeetingNumber int            `json:"meeting_number" validate:"required,min=1,max=50"`
	Entries       []MeetingEntry `json:"entries" validate:"required,min=1,dive"`
}

// Validate applies the rules the struct tags cannot express.
func (r BulkRecordMeetingRequest) Validate() map[string]string {
	errs := map[string]string{}
	if r.MeetingDate.IsZero() {
		errs["meeting_date"] = "debe seleccionar la fecha de la reunión"
	}
	if len(r.Entries) == 0 {
		errs["entries"] = "debe marcar la asistencia de al menos un estudiante"
	}
	for _, e := range r.Entries {
		if e.Attended && e.RepresentativeName != nil && *e.RepresentativeName != "" && e.Relationship == nil {
			errs["relationship"] = "indique el parentesco del representante"
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type MeetingAttendanceResponse struct {
	MeetingAttendanceId        uuid.UUID `json:"meeting_attendance_id"`
	MeetingAttendanceCourseId  uuid.UUID `json:"meeting_attendance_course_id"`
	MeetingAttendanceStudentId uuid.UUID `json:"meeting_attendance_student_id"`
	MeetingAttendanceParentId  uuid.UUID `json:"meeting_attendance_parent_id"`
	MeetingAttendanceDate      time.Time `json:"meeting_attendance_date"`
	MeetingAttendanceNumber    int       `json:"meeting_attendance_number"`
	MeetingAttendanceAttended  bool      `json:"meeting_attendance_attended"`

	MeetingAttendanceRepresentativeName *string `json:"meeting_attendance_representative_name,omitempty"`
	MeetingAttendanceRelationship       *string `json:"meeting_attendance_relationship,omitempty"`
	MeetingAttendanceObservations       *string `json:"meeting_attendance_observations,omitempty"`
	MeetingAttendanceAgreements         *string `json:"meeting_attendance_agreements,omitempty"`

	MeetingAttendanceCreatedAt time.Time `json:"meeting_attendance_created_at"`
}

// MeetingSummary is one historical session, aggregated.
type MeetingSummary struct {
	MeetingDate   time.Time `gorm:"column:meeting_attendance_date" json:"meeting_date"`
	MeetingNumber int       `gorm:"column:meeting_attendance_number" json:"meeting_number"`
	TotalStudents int       `gorm:"column:total_students" json:"total_students"`
	AttendedCount int       `gorm:"column:attended_count" json:"attended_count"`
}

type MeetingStatistics struct {
	TotalMeetings     int     `json:"total_meetings"`
	AverageAttendance float64 `json:"average_attendance"` // percentage 0-100
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r BulkRecordMeetingRequest) ToModels(registeredBy uuid.UUID) []m.MeetingAttendanceModel {
	out := make([]m.MeetingAttendanceModel, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, m.MeetingAttendanceModel{
			MeetingAttendanceCourseId:           r.CourseId,
			MeetingAttendanceStudentId:          e.StudentId,
			MeetingAttendanceParentId:           e.ParentId,
			MeetingAttendanceDate:               r.MeetingDate,
			MeetingAttendanceNumber:             r.MeetingNumber,
			MeetingAttendanceAttended:           e.Attended,
			MeetingAttendanceRepresentativeName: e.RepresentativeName,
			MeetingAttendanceRelationship:       e.Relationship,
			MeetingAttendanceObservations:       e.Observations,
			MeetingAttendanceAgreements:         e.Agreements,
			MeetingAttendanceRegisteredBy:       registeredBy,
		})
	}
	return out
}

func NewMeetingAttendanceResponse(mdl m.MeetingAttendanceModel) MeetingAttendanceResponse {
	return MeetingAttendanceResponse{
		MeetingAttendanceId:                 mdl.MeetingAttendanceId,
		MeetingAttendanceCourseId:           mdl.MeetingAttendanceCourseId,
		MeetingAttendanceStudentId:          mdl.MeetingAttendanceStudentId,
		MeetingAttendanceParentId:           mdl.MeetingAttendanceParentId,
		MeetingAttendanceDate:               mdl.MeetingAttendanceDate,
		MeetingAttendanceNumber:             mdl.MeetingAttendanceNumber,
		MeetingAttendanceAttended:           mdl.MeetingAttendanceAttended,
		MeetingAttendanceRepresentativeName: mdl.MeetingAttendanceRepresentativeName,
		MeetingAttendanceRelationship:       mdl.MeetingAttendanceRelationship,
		MeetingAttendanceObservations:       mdl.MeetingAttendanceObservations,
		MeetingAttendanceAgreements:         mdl.MeetingAttendanceAgreements,
		MeetingAttendanceCreatedAt:          mdl.MeetingAttendanceCreatedAt,
	}
}
