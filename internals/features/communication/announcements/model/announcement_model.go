package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audiences
const (
	AudienceAll      = "ALL"
	AudienceTeachers = "TEACHERS"
	AudienceParents  = "PARENTS"
	AudienceCourse   = "COURSE" // requires AnnouncementCourseId
)

type AnnouncementModel struct {
	AnnouncementId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`

	AnnouncementTitle string `gorm:"size:150;not null;column:announcement_title" json:"announcement_title"`
	AnnouncementBody  string `gorm:"type:text;not null;column:announcement_body" json:"announcement_body"`

	AnnouncementAudience string     `gorm:"size:20;not null;default:'ALL';column:announcement_audience" json:"announcement_audience"`
	AnnouncementCourseId *uuid.UUID `gorm:"type:uuid;index;column:announcement_course_id" json:"announcement_course_id,omitempty"`

	AnnouncementCreatedBy   uuid.UUID `gorm:"type:uuid;not null;column:announcement_created_by" json:"announcement_created_by"`
	AnnouncementPublishedAt time.Time `gorm:"not null;column:announcement_published_at" json:"announcement_published_at"`

	AnnouncementCreatedAt time.Time      `gorm:"autoCreateTime;column:announcement_created_at" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"autoUpdateTime;column:announcement_updated_at" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"index;column:announcement_deleted_at" json:"-"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
