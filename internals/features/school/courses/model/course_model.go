package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CourseModel represents a course (curso) of the school: a grade + section
// for one academic year, owned by an admin and assigned to a jefe teacher.
type CourseModel struct {
	CourseId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	CourseName    string `gorm:"size:100;not null;column:course_name" json:"course_name"`
	CourseGrade   string `gorm:"size:50;not null;column:course_grade" json:"course_grade"`     // e.g. "3° Básico"
	CourseSection string `gorm:"size:10;not null;column:course_section" json:"course_section"` // e.g. "A"
	CourseLevel   string `gorm:"size:50;not null;column:course_level" json:"course_level"`     // educational level id, e.g. "basica"

	CourseSubjects     pq.StringArray `gorm:"type:text[];column:course_subjects" json:"course_subjects"`
	CourseMaxStudents  int            `gorm:"not null;default:45;column:course_max_students" json:"course_max_students"`
	CourseTeacherId    uuid.UUID      `gorm:"type:uuid;not null;column:course_teacher_id" json:"course_teacher_id"`
	CourseAcademicYear int            `gorm:"not null;column:course_academic_year" json:"course_academic_year"`
	CourseIsActive     bool           `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`

	Students []StudentModel `gorm:"many2many:course_enrollments;foreignKey:CourseId;joinForeignKey:enrollment_course_id;References:StudentId;joinReferences:enrollment_student_id" json:"students,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
