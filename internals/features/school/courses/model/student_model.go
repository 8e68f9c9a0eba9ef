package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel represents an enrolled pupil. Students are not login
// accounts; their apoderado (parent user) is.
type StudentModel struct {
	StudentId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentFullName  string     `gorm:"size:100;not null;column:student_full_name" json:"student_full_name"`
	StudentRun       string     `gorm:"size:12;unique;column:student_run" json:"student_run"` // Chilean RUN, e.g. 23.456.789-K
	StudentBirthDate *time.Time `gorm:"type:date;column:student_birth_date" json:"student_birth_date,omitempty"`
	StudentParentId  uuid.UUID  `gorm:"type:uuid;not null;column:student_parent_id" json:"student_parent_id"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

// CourseEnrollment is the explicit join row so enrollments carry their own
// timestamps and can be revoked without touching either side.
type CourseEnrollment struct {
	EnrollmentId        uint      `gorm:"primaryKey;column:enrollment_id" json:"enrollment_id"`
	EnrollmentCourseId  uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollment_course_student,unique;column:enrollment_course_id" json:"enrollment_course_id"`
	EnrollmentStudentId uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollment_course_student,unique;column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
}

func (CourseEnrollment) TableName() string { return "course_enrollments" }
