package dto

import (
	"time"

	"github.com/google/uuid"

	"miescuela_backend/internals/features/communication/announcements/model"
)

type CreateAnnouncementRequest struct {
	AnnouncementTitle    string     `json:"announcement_title" validate:"required,min=3,max=150"`
	AnnouncementBody     string     `json:"announcement_body" validate:"required,min=3"`
	AnnouncementAudience string     `json:"announcement_audience" validate:"required,oneof=ALL TEACHERS PARENTS COURSE"`
	AnnouncementCourseId *uuid.UUID `json:"announcement_course_id" validate:"omitempty,uuid4"`
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle *string `json:"announcement_title" validate:"omitempty,min=3,max=150"`
	AnnouncementBody  *string `json:"announcement_body" validate:"omitempty,min=3"`
}

type AnnouncementResponse struct {
	AnnouncementId          uuid.UUID  `json:"announcement_id"`
	AnnouncementTitle       string     `json:"announcement_title"`
	AnnouncementBody        string     `json:"announcement_body"`
	AnnouncementAudience    string     `json:"announcement_audience"`
	AnnouncementCourseId    *uuid.UUID `json:"announcement_course_id,omitempty"`
	AnnouncementCreatedBy   uuid.UUID  `json:"announcement_created_by"`
	AnnouncementPublishedAt time.Time  `json:"announcement_published_at"`
}

func (r CreateAnnouncementRequest) ToModel(createdBy uuid.UUID) model.AnnouncementModel {
	return model.AnnouncementModel{
		AnnouncementTitle:       r.AnnouncementTitle,
		AnnouncementBody:        r.AnnouncementBody,
		AnnouncementAudience:    r.AnnouncementAudience,
		AnnouncementCourseId:    r.AnnouncementCourseId,
		AnnouncementCreatedBy:   createdBy,
		AnnouncementPublishedAt: time.Now(),
	}
}

func NewAnnouncementResponse(m model.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementId:          m.AnnouncementId,
		AnnouncementTitle:       m.AnnouncementTitle,
		AnnouncementBody:        m.AnnouncementBody,
		AnnouncementAudience:    m.AnnouncementAudience,
		AnnouncementCourseId:    m.AnnouncementCourseId,
		AnnouncementCreatedBy:   m.AnnouncementCreatedBy,
		AnnouncementPublishedAt: m.AnnouncementPublishedAt,
	}
}
