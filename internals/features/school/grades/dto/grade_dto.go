package dto

import (
	"time"

	"github.com/google/uuid"

	m "miescuela_backend/internals/features/school/grades/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// CreateGradeRequest carries one calificación. Scale rules are enforced
// here, before anything touches the database:
//   - value and max value within [1.0, 7.0]
//   - value ≤ max value
//   - percentage within [0, 100] when present
//   - evaluation name at least 3 characters
type CreateGradeRequest struct {
	GradeStudentId uuid.UUID `json:"grade_student_id" validate:"required,uuid4"`
	GradeCourseId  uuid.UUID `json:"grade_course_id" validate:"required,uuid4"`
	GradeSubject   string    `json:"grade_subject" validate:"required,min=2,max=100"`

	GradeEvaluationType string    `json:"grade_evaluation_type" validate:"required,oneof=PRUEBA TRABAJO DISERTACION CONTROL EXAMEN OTRO"`
	GradeEvaluationName string    `json:"grade_evaluation_name" validate:"required,min=3,max=150"`
	GradeDate           time.Time `json:"grade_date" validate:"required"`

	GradeValue      float64  `json:"grade_value" validate:"required,gte=1,lte=7,ltefield=GradeMaxValue"`
	GradeMaxValue   float64  `json:"grade_max_value" validate:"required,gte=1,lte=7"`
	GradePercentage *float64 `json:"grade_percentage" validate:"omitempty,gte=0,lte=100"`

	GradePeriod   string  `json:"grade_period" validate:"required,oneof=PRIMER_SEMESTRE SEGUNDO_SEMESTRE ANUAL"`
	GradeComments *string `json:"grade_comments" validate:"omitempty,max=500"`
}

type FilterGradesRequest struct {
	StudentId *uuid.UUID `query:"student_id" validate:"omitempty,uuid4"`
	CourseId  *uuid.UUID `query:"course_id" validate:"omitempty,uuid4"`
	Subject   *string    `query:"subject" validate:"omitempty,max=100"`
	Period    *string    `query:"period" validate:"omitempty,oneof=PRIMER_SEMESTRE SEGUNDO_SEMESTRE ANUAL"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type GradeResponse struct {
	GradeId        uuid.UUID `json:"grade_id"`
	GradeStudentId uuid.UUID `json:"grade_student_id"`
	GradeCourseId  uuid.UUID `json:"grade_course_id"`
	GradeSubject   string    `json:"grade_subject"`

	GradeEvaluationType string    `json:"grade_evaluation_type"`
	GradeEvaluationName string    `json:"grade_evaluation_name"`
	GradeDate           time.Time `json:"grade_date"`

	GradeValue      float64  `json:"grade_value"`
	GradeMaxValue   float64  `json:"grade_max_value"`
	GradePercentage *float64 `json:"grade_percentage,omitempty"`

	GradePeriod   string  `json:"grade_period"`
	GradeComments *string `json:"grade_comments,omitempty"`

	GradeTeacherId uuid.UUID `json:"grade_teacher_id"`
	GradeCreatedAt time.Time `json:"grade_created_at"`

	// Derived, never persisted
	GradeStatus  string `json:"grade_status"`
	GradePassing bool   `json:"grade_passing"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateGradeRequest) ToModel(teacherID uuid.UUID) m.GradeModel {
	return m.GradeModel{
		GradeStudentId:      r.GradeStudentId,
		GradeCourseId:       r.GradeCourseId,
		GradeSubject:        r.GradeSubject,
		GradeEvaluationType: r.GradeEvaluationType,
		GradeEvaluationName: r.GradeEvaluationName,
		GradeDate:           r.GradeDate,
		GradeValue:          r.GradeValue,
		GradeMaxValue:       r.GradeMaxValue,
		GradePercentage:     r.GradePercentage,
		GradePeriod:         r.GradePeriod,
		GradeComments:       r.GradeComments,
		GradeTeacherId:      teacherID,
	}
}

func NewGradeResponse(mdl m.GradeModel) GradeResponse {
	return GradeResponse{
		GradeId:             mdl.GradeId,
		GradeStudentId:      mdl.GradeStudentId,
		GradeCourseId:       mdl.GradeCourseId,
		GradeSubject:        mdl.GradeSubject,
		GradeEvaluationType: mdl.GradeEvaluationType,
		GradeEvaluationName: mdl.GradeEvaluationName,
		GradeDate:           mdl.GradeDate,
		GradeValue:          mdl.GradeValue,
		GradeMaxValue:       mdl.GradeMaxValue,
		GradePercentage:     mdl.GradePercentage,
		GradePeriod:         mdl.GradePeriod,
		GradeComments:       mdl.GradeComments,
		GradeTeacherId:      mdl.GradeTeacherId,
		GradeCreatedAt:      mdl.GradeCreatedAt,
		GradeStatus:         m.StatusLabel(mdl.GradeValue),
		GradePassing:        m.IsPassing(mdl.GradeValue),
	}
}
