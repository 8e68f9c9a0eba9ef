package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chilean grading scale. Fixed by regulation, not configurable.
const (
	GradeMin  = 1.0
	GradeMax  = 7.0
	GradePass = 4.0
)

// Evaluation types
const (
	EvaluationPrueba      = "PRUEBA"
	EvaluationTrabajo     = "TRABAJO"
	EvaluationDisertacion = "DISERTACION"
	EvaluationControl     = "CONTROL"
	EvaluationExamen      = "EXAMEN"
	EvaluationOtro        = "OTRO"
)

// Academic periods
const (
	PeriodPrimerSemestre  = "PRIMER_SEMESTRE"
	PeriodSegundoSemestre = "SEGUNDO_SEMESTRE"
	PeriodAnual           = "ANUAL"
)

// GradeModel represents one calificación. Identity is immutable once
// created; there is no edit flow for recorded grades.
type GradeModel struct {
	GradeId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_id" json:"grade_id"`

	GradeStudentId uuid.UUID `gorm:"type:uuid;not null;index;column:grade_student_id" json:"grade_student_id"`
	GradeCourseId  uuid.UUID `gorm:"type:uuid;not null;index;column:grade_course_id" json:"grade_course_id"`
	GradeSubject   string    `gorm:"size:100;not null;column:grade_subject" json:"grade_subject"`

	GradeEvaluationType string    `gorm:"size:20;not null;column:grade_evaluation_type" json:"grade_evaluation_type"`
	GradeEvaluationName string    `gorm:"size:150;not null;column:grade_evaluation_name" json:"grade_evaluation_name"`
	GradeDate           time.Time `gorm:"type:date;not null;column:grade_date" json:"grade_date"`

	GradeValue      float64  `gorm:"type:numeric(3,1);not null;column:grade_value" json:"grade_value"`
	GradeMaxValue   float64  `gorm:"type:numeric(3,1);not null;column:grade_max_value" json:"grade_max_value"`
	GradePercentage *float64 `gorm:"type:numeric(5,2);column:grade_percentage" json:"grade_percentage,omitempty"`

	GradePeriod   string  `gorm:"size:20;not null;column:grade_period" json:"grade_period"`
	GradeComments *string `gorm:"type:text;column:grade_comments" json:"grade_comments,omitempty"`

	GradeTeacherId uuid.UUID `gorm:"type:uuid;not null;column:grade_teacher_id" json:"grade_teacher_id"`

	GradeCreatedAt time.Time      `gorm:"column:grade_created_at;autoCreateTime" json:"grade_created_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"grade_deleted_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }

// StatusLabel derives the presentation label from the grade value. Never
// stored; recomputed wherever it is shown.
func StatusLabel(value float64) string {
	switch {
	case value >= 6.0:
		return "Excelente"
	case value >= 5.0:
		return "Bueno"
	case value >= GradePass:
		return "Suficiente"
	default:
		return "Insuficiente"
	}
}

// IsPassing reports whether the value meets the legal passing threshold.
func IsPassing(value float64) bool {
	return value >= GradePass
}
