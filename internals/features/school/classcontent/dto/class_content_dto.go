package dto

import (
	"time"

	"github.com/google/uuid"

	m "miescuela_backend/internals/features/school/classcontent/model"
)

type CreateClassContentRequest struct {
	ClassContentCourseId   uuid.UUID `json:"class_content_course_id" validate:"required,uuid4"`
	ClassContentDate       time.Time `json:"class_content_date" validate:"required"`
	ClassContentSubject    string    `json:"class_content_subject" validate:"required,min=2,max=100"`
	ClassContentTopic      string    `json:"class_content_topic" validate:"required,min=5,max=1000"`
	ClassContentActivities *string   `json:"class_content_activities" validate:"omitempty,max=1000"`
}

type ClassContentResponse struct {
	ClassContentId         uuid.UUID `json:"class_content_id"`
	ClassContentCourseId   uuid.UUID `json:"class_content_course_id"`
	ClassContentDate       time.Time `json:"class_content_date"`
	ClassContentSubject    string    `json:"class_content_subject"`
	ClassContentTopic      string    `json:"class_content_topic"`
	ClassContentActivities *string   `json:"class_content_activities,omitempty"`
	ClassContentTeacherId  uuid.UUID `json:"class_content_teacher_id"`
	ClassContentCreatedAt  time.Time `json:"class_content_created_at"`
}

func (r CreateClassContentRequest) ToModel(teacherID uuid.UUID) m.ClassContentModel {
	return m.ClassContentModel{
		ClassContentCourseId:   r.ClassContentCourseId,
		ClassContentDate:       r.ClassContentDate,
		ClassContentSubject:    r.ClassContentSubject,
		ClassContentTopic:      r.ClassContentTopic,
		ClassContentActivities: r.ClassContentActivities,
		ClassContentTeacherId:  teacherID,
	}
}

func NewClassContentResponse(mdl m.ClassContentModel) ClassContentResponse {
	return ClassContentResponse{
		ClassContentId:         mdl.ClassContentId,
		ClassContentCourseId:   mdl.ClassContentCourseId,
		ClassContentDate:       mdl.ClassContentDate,
		ClassContentSubject:    mdl.ClassContentSubject,
		ClassContentTopic:      mdl.ClassContentTopic,
		ClassContentActivities: mdl.ClassContentActivities,
		ClassContentTeacherId:  mdl.ClassContentTeacherId,
		ClassContentCreatedAt:  mdl.ClassContentCreatedAt,
	}
}
