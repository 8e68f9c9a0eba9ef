package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"miescuela_backend/internals/features/communication/votes/model"
)

type CreateVoteRequest struct {
	VoteQuestion string     `json:"vote_question" validate:"required,min=5,max=200"`
	VoteOptions  []string   `json:"vote_options" validate:"required,min=2,max=10,dive,required,min=1,max=100"`
	VoteCourseId *uuid.UUID `json:"vote_course_id" validate:"omitempty,uuid4"`
	VoteClosesAt time.Time  `json:"vote_closes_at" validate:"required"`
}

type CastBallotRequest struct {
	BallotOptionIndex *int `json:"ballot_option_index" validate:"required,gte=0"`
}

type VoteResponse struct {
	VoteId       uuid.UUID  `json:"vote_id"`
	VoteQuestion string     `json:"vote_question"`
	VoteOptions  []string   `json:"vote_options"`
	VoteCourseId *uuid.UUID `json:"vote_course_id,omitempty"`
	VoteClosesAt time.Time  `json:"vote_closes_at"`
	VoteIsOpen   bool       `json:"vote_is_open"`
}

type VoteOptionTally struct {
	OptionIndex int    `json:"option_index"`
	OptionLabel string `json:"option_label"`
	Ballots     int64  `json:"ballots"`
}

type VoteResultsResponse struct {
	Vote         VoteResponse      `json:"vote"`
	TotalBallots int64             `json:"total_ballots"`
	Tally        []VoteOptionTally `json:"tally"`
}

func (r CreateVoteRequest) ToModel(createdBy uuid.UUID) (model.VoteModel, error) {
	raw, err := sonic.Marshal(r.VoteOptions)
	if err != nil {
		return model.VoteModel{}, err
	}
	return model.VoteModel{
		VoteQuestion:  r.VoteQuestion,
		VoteOptions:   datatypes.JSON(raw),
		VoteCourseId:  r.VoteCourseId,
		VoteClosesAt:  r.VoteClosesAt,
		VoteCreatedBy: createdBy,
	}, nil
}

// DecodeOptions unpacks the stored JSON array back into labels.
func DecodeOptions(m model.VoteModel) ([]string, error) {
	var opts []string
	if err := sonic.Unmarshal(m.VoteOptions, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func NewVoteResponse(m model.VoteModel, now time.Time) (VoteResponse, error) {
	opts, err := DecodeOptions(m)
	if err != nil {
		return VoteResponse{}, err
	}
	return VoteResponse{
		VoteId:       m.VoteId,
		VoteQuestion: m.VoteQuestion,
		VoteOptions:  opts,
		VoteCourseId: m.VoteCourseId,
		VoteClosesAt: m.VoteClosesAt,
		VoteIsOpen:   m.IsOpen(now),
	}, nil
}
