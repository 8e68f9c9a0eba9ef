package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Daily attendance statuses
const (
	StatusPresente    = "PRESENTE"
	StatusAusente     = "AUSENTE"
	StatusAtrasado    = "ATRASADO"
	StatusJustificado = "JUSTIFICADO"
	StatusRetirado    = "RETIRADO"
)

var AllStatuses = []string{
	StatusPresente,
	StatusAusente,
	StatusAtrasado,
	StatusJustificado,
	StatusRetirado,
}

func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// AttendanceModel is one student's attendance state for one school day.
// Unique per (course, student, date); re-recording a day upserts.
type AttendanceModel struct {
	AttendanceId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceCourseId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_course_student_date;column:attendance_course_id" json:"attendance_course_id"`
	AttendanceStudentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_course_student_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_course_student_date;column:attendance_date" json:"attendance_date"`

	AttendanceStatus  string  `gorm:"size:15;not null;column:attendance_status" json:"attendance_status"`
	AttendanceComment *string `gorm:"type:text;column:attendance_comment" json:"attendance_comment,omitempty"`

	AttendanceRegisteredBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_registered_by" json:"attendance_registered_by"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time     `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

// LetterCode maps a status to the single-letter code used in the printed
// class record: Presente→P, Ausente→A, Atrasado→T, Justificado→J, Retirado→R.
func LetterCode(status string) string {
	switch status {
	case StatusPresente:
		return "P"
	case StatusAusente:
		return "A"
	case StatusAtrasado:
		return "T"
	case StatusJustificado:
		return "J"
	case StatusRetirado:
		return "R"
	default:
		return "-"
	}
}
