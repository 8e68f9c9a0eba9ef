package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "miescuela_backend/internals/features/school/courses/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateCourseRequest struct {
	CourseName         string    `json:"course_name" validate:"required,min=3,max=100"`
	CourseGrade        string    `json:"course_grade" validate:"required,max=50"`
	CourseSection      string    `json:"course_section" validate:"required,max=10"`
	CourseLevel        string    `json:"course_level" validate:"required,max=50"`
	CourseSubjects     []string  `json:"course_subjects" validate:"required,min=1,dive,min=2"`
	CourseMaxStudents  int       `json:"course_max_students" validate:"omitempty,min=1,max=60"`
	CourseTeacherId    uuid.UUID `json:"course_teacher_id" validate:"required,uuid4"`
	CourseAcademicYear int       `json:"course_academic_year" validate:"required,min=2000,max=2100"`
}

type UpdateCourseRequest struct {
	CourseName        *string   `json:"course_name" validate:"omitempty,min=3,max=100"`
	CourseSection     *string   `json:"course_section" validate:"omitempty,max=10"`
	CourseSubjects    *[]string `json:"course_subjects" validate:"omitempty,min=1,dive,min=2"`
	CourseMaxStudents *int      `json:"course_max_students" validate:"omitempty,min=1,max=60"`
	CourseTeacherId   *uuid.UUID `json:"course_teacher_id" validate:"omitempty,uuid4"`
	CourseIsActive    *bool     `json:"course_is_active" validate:"omitempty"`
}

type EnrollStudentRequest struct {
	StudentId uuid.UUID `json:"student_id" validate:"required,uuid4"`
}

type CreateStudentRequest struct {
	StudentFullName  string     `json:"student_full_name" validate:"required,min=3,max=100"`
	StudentRun       string     `json:"student_run" validate:"required,min=8,max=12"`
	StudentBirthDate *time.Time `json:"student_birth_date" validate:"omitempty"`
	StudentParentId  uuid.UUID  `json:"student_parent_id" validate:"required,uuid4"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type CourseResponse struct {
	CourseId           uuid.UUID `json:"course_id"`
	CourseName         string    `json:"course_name"`
	CourseGrade        string    `json:"course_grade"`
	CourseSection      string    `json:"course_section"`
	CourseLevel        string    `json:"course_level"`
	CourseSubjects     []string  `json:"course_subjects"`
	CourseMaxStudents  int       `json:"course_max_students"`
	CourseTeacherId    uuid.UUID `json:"course_teacher_id"`
	CourseAcademicYear int       `json:"course_academic_year"`
	CourseIsActive     bool      `json:"course_is_active"`
	CourseCreatedAt    time.Time `json:"course_created_at"`

	Students []StudentResponse `json:"students,omitempty"`
}

type StudentResponse struct {
	StudentId       uuid.UUID  `json:"student_id"`
	StudentFullName string     `json:"student_full_name"`
	StudentRun      string     `json:"student_run"`
	StudentBirthDate *time.Time `json:"student_birth_date,omitempty"`
	StudentParentId uuid.UUID  `json:"student_parent_id"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateCourseRequest) ToModel() m.CourseModel {
	maxStudents := r.CourseMaxStudents
	if maxStudents == 0 {
		maxStudents = 45
	}
	return m.CourseModel{
		CourseName:         r.CourseName,
		CourseGrade:        r.CourseGrade,
		CourseSection:      r.CourseSection,
		CourseLevel:        r.CourseLevel,
		CourseSubjects:     pq.StringArray(r.CourseSubjects),
		CourseMaxStudents:  maxStudents,
		CourseTeacherId:    r.CourseTeacherId,
		CourseAcademicYear: r.CourseAcademicYear,
		CourseIsActive:     true,
	}
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentFullName:  r.StudentFullName,
		StudentRun:       r.StudentRun,
		StudentBirthDate: r.StudentBirthDate,
		StudentParentId:  r.StudentParentId,
	}
}

func NewStudentResponse(mdl m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentId:        mdl.StudentId,
		StudentFullName:  mdl.StudentFullName,
		StudentRun:       mdl.StudentRun,
		StudentBirthDate: mdl.StudentBirthDate,
		StudentParentId:  mdl.StudentParentId,
	}
}

func NewCourseResponse(mdl m.CourseModel) CourseResponse {
	resp := CourseResponse{
		CourseId:           mdl.CourseId,
		CourseName:         mdl.CourseName,
		CourseGrade:        mdl.CourseGrade,
		CourseSection:      mdl.CourseSection,
		CourseLevel:        mdl.CourseLevel,
		CourseSubjects:     []string(mdl.CourseSubjects),
		CourseMaxStudents:  mdl.CourseMaxStudents,
		CourseTeacherId:    mdl.CourseTeacherId,
		CourseAcademicYear: mdl.CourseAcademicYear,
		CourseIsActive:     mdl.CourseIsActive,
		CourseCreatedAt:    mdl.CourseCreatedAt,
	}
	for _, s := range mdl.Students {
		resp.Students = append(resp.Students, NewStudentResponse(s))
	}
	return resp
}
