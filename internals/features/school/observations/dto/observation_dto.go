package dto

import (
	"time"

	"github.com/google/uuid"

	m "miescuela_backend/internals/features/school/observations/model"
)

type CreateObservationRequest struct {
	ObservationStudentId uuid.UUID `json:"observation_student_id" validate:"required,uuid4"`
	ObservationCourseId  uuid.UUID `json:"observation_course_id" validate:"required,uuid4"`
	ObservationDate      time.Time `json:"observation_date" validate:"required"`
	ObservationType      string    `json:"observation_type" validate:"required,oneof=POSITIVA NEGATIVA NEUTRA"`
	ObservationText      string    `json:"observation_text" validate:"required,min=5,max=1000"`
}

type ObservationResponse struct {
	ObservationId        uuid.UUID `json:"observation_id"`
	ObservationStudentId uuid.UUID `json:"observation_student_id"`
	ObservationCourseId  uuid.UUID `json:"observation_course_id"`
	ObservationDate      time.Time `json:"observation_date"`
	ObservationType      string    `json:"observation_type"`
	ObservationText      string    `json:"observation_text"`
	ObservationAuthorId  uuid.UUID `json:"observation_author_id"`
	ObservationCreatedAt time.Time `json:"observation_created_at"`
}

func (r CreateObservationRequest) ToModel(authorID uuid.UUID) m.ObservationModel {
	return m.ObservationModel{
		ObservationStudentId: r.ObservationStudentId,
		ObservationCourseId:  r.ObservationCourseId,
		ObservationDate:      r.ObservationDate,
		ObservationType:      r.ObservationType,
		ObservationText:      r.ObservationText,
		ObservationAuthorId:  authorID,
	}
}

func NewObservationResponse(mdl m.ObservationModel) ObservationResponse {
	return ObservationResponse{
		ObservationId:        mdl.ObservationId,
		ObservationStudentId: mdl.ObservationStudentId,
		ObservationCourseId:  mdl.ObservationCourseId,
		ObservationDate:      mdl.ObservationDate,
		ObservationType:      mdl.ObservationType,
		ObservationText:      mdl.ObservationText,
		ObservationAuthorId:  mdl.ObservationAuthorId,
		ObservationCreatedAt: mdl.ObservationCreatedAt,
	}
}
