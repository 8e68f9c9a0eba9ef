package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ObservationPositiva = "POSITIVA"
	ObservationNegativa = "NEGATIVA"
	ObservationNeutra   = "NEUTRA"
)

// ObservationModel is an entry in the student's hoja de vida.
type ObservationModel struct {
	ObservationId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:observation_id" json:"observation_id"`

	ObservationStudentId uuid.UUID `gorm:"type:uuid;not null;index;column:observation_student_id" json:"observation_student_id"`
	ObservationCourseId  uuid.UUID `gorm:"type:uuid;not null;index;column:observation_course_id" json:"observation_course_id"`

	ObservationDate time.Time `gorm:"type:date;not null;column:observation_date" json:"observation_date"`
	ObservationType string    `gorm:"size:10;not null;column:observation_type" json:"observation_type"`
	ObservationText string    `gorm:"type:text;not null;column:observation_text" json:"observation_text"`

	ObservationAuthorId uuid.UUID `gorm:"type:uuid;not null;column:observation_author_id" json:"observation_author_id"`

	ObservationCreatedAt time.Time      `gorm:"column:observation_created_at;autoCreateTime" json:"observation_created_at"`
	ObservationDeletedAt gorm.DeletedAt `gorm:"column:observation_deleted_at;index" json:"observation_deleted_at,omitempty"`
}

func (ObservationModel) TableName() string { return "observations" }
