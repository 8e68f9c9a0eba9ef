package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassContentModel is one leccionario entry: what was actually taught in a
// course on a given day.
type ClassContentModel struct {
	ClassContentId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_content_id" json:"class_content_id"`

	ClassContentCourseId uuid.UUID `gorm:"type:uuid;not null;index;column:class_content_course_id" json:"class_content_course_id"`
	ClassContentDate     time.Time `gorm:"type:date;not null;column:class_content_date" json:"class_content_date"`
	ClassContentSubject  string    `gorm:"size:100;not null;column:class_content_subject" json:"class_content_subject"`

	ClassContentTopic      string  `gorm:"type:text;not null;column:class_content_topic" json:"class_content_topic"`
	ClassContentActivities *string `gorm:"type:text;column:class_content_activities" json:"class_content_activities,omitempty"`

	ClassContentTeacherId uuid.UUID `gorm:"type:uuid;not null;column:class_content_teacher_id" json:"class_content_teacher_id"`

	ClassContentCreatedAt time.Time      `gorm:"column:class_content_created_at;autoCreateTime" json:"class_content_created_at"`
	ClassContentDeletedAt gorm.DeletedAt `gorm:"column:class_content_deleted_at;index" json:"class_content_deleted_at,omitempty"`
}

func (ClassContentModel) TableName() string { return "class_contents" }
