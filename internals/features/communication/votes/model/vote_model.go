package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VoteModel is one poll put to the parent community. Options live as a
// JSON array of strings; option indices are what ballots reference.
type VoteModel struct {
	VoteId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:vote_id" json:"vote_id"`

	VoteQuestion string         `gorm:"size:200;not null;column:vote_question" json:"vote_question"`
	VoteOptions  datatypes.JSON `gorm:"type:jsonb;not null;column:vote_options" json:"vote_options"`

	VoteCourseId *uuid.UUID `gorm:"type:uuid;index;column:vote_course_id" json:"vote_course_id,omitempty"`
	VoteClosesAt time.Time  `gorm:"not null;column:vote_closes_at" json:"vote_closes_at"`

	VoteCreatedBy uuid.UUID      `gorm:"type:uuid;not null;column:vote_created_by" json:"vote_created_by"`
	VoteCreatedAt time.Time      `gorm:"autoCreateTime;column:vote_created_at" json:"vote_created_at"`
	VoteUpdatedAt time.Time      `gorm:"autoUpdateTime;column:vote_updated_at" json:"vote_updated_at"`
	VoteDeletedAt gorm.DeletedAt `gorm:"index;column:vote_deleted_at" json:"-"`
}

func (VoteModel) TableName() string {
	return "votes"
}

func (v VoteModel) IsOpen(now time.Time) bool {
	return now.Before(v.VoteClosesAt)
}

// BallotModel records one parent's choice. The unique index enforces one
// ballot per parent per vote at the database level.
type BallotModel struct {
	BallotId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ballot_id" json:"ballot_id"`

	BallotVoteId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ballot_vote_parent;column:ballot_vote_id" json:"ballot_vote_id"`
	BallotParentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ballot_vote_parent;column:ballot_parent_id" json:"ballot_parent_id"`

	BallotOptionIndex int `gorm:"not null;column:ballot_option_index" json:"ballot_option_index"`

	BallotCreatedAt time.Time `gorm:"autoCreateTime;column:ballot_created_at" json:"ballot_created_at"`
}

func (BallotModel) TableName() string {
	return "vote_ballots"
}
