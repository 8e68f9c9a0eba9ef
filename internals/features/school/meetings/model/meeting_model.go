package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Family relationship of the attending representative
const (
	RelationshipMadre   = "madre"
	RelationshipPadre   = "padre"
	RelationshipAbuela  = "abuela"
	RelationshipAbuelo  = "abuelo"
	RelationshipTia     = "tia"
	RelationshipTio     = "tio"
	RelationshipHermana = "hermana"
	RelationshipHermano = "hermano"
	RelationshipTutor   = "tutor"
	RelationshipOtro    = "otro"
)

// MeetingAttendanceModel is one student's representation state at one
// apoderado meeting. Unique per (course, student, date, number); a bulk
// save writes one row per enrolled student.
type MeetingAttendanceModel struct {
	MeetingAttendanceId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:meeting_attendance_id" json:"meeting_attendance_id"`

	MeetingAttendanceCourseId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meeting_course_student_date_num;column:meeting_attendance_course_id" json:"meeting_attendance_course_id"`
	MeetingAttendanceStudentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meeting_course_student_date_num;column:meeting_attendance_student_id" json:"meeting_attendance_student_id"`
	MeetingAttendanceParentId  uuid.UUID `gorm:"type:uuid;not null;column:meeting_attendance_parent_id" json:"meeting_attendance_parent_id"`

	MeetingAttendanceDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_meeting_course_student_date_num;column:meeting_attendance_date" json:"meeting_attendance_date"`
	MeetingAttendanceNumber int       `gorm:"not null;uniqueIndex:idx_meeting_course_student_date_num;column:meeting_attendance_number" json:"meeting_attendance_number"`

	MeetingAttendanceAttended bool `gorm:"not null;column:meeting_attendance_attended" json:"meeting_attendance_attended"`

	MeetingAttendanceRepresentativeName *string `gorm:"size:100;column:meeting_attendance_representative_name" json:"meeting_attendance_representative_name,omitempty"`
	MeetingAttendanceRelationship       *string `gorm:"size:20;column:meeting_attendance_relationship" json:"meeting_attendance_relationship,omitempty"`

	MeetingAttendanceObservations *string `gorm:"type:text;column:meeting_attendance_observations" json:"meeting_attendance_observations,omitempty"`
	MeetingAttendanceAgreements   *string `gorm:"type:text;column:meeting_attendance_agreements" json:"meeting_attendance_agreements,omitempty"`

	MeetingAttendanceRegisteredBy uuid.UUID `gorm:"type:uuid;not null;column:meeting_attendance_registered_by" json:"meeting_attendance_registered_by"`

	MeetingAttendanceCreatedAt time.Time      `gorm:"column:meeting_attendance_created_at;autoCreateTime" json:"meeting_attendance_created_at"`
	MeetingAttendanceUpdatedAt *time.Time     `gorm:"column:meeting_attendance_updated_at;autoUpdateTime" json:"meeting_attendance_updated_at,omitempty"`
	MeetingAttendanceDeletedAt gorm.DeletedAt `gorm:"column:meeting_attendance_deleted_at;index" json:"meeting_attendance_deleted_at,omitempty"`
}

func (MeetingAttendanceModel) TableName() string { return "meeting_attendances" }
