package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateVoteRequest() CreateVoteRequest {
	return CreateVoteRequest{
		VoteQuestion: "¿Fecha para la kermesse?",
		VoteOptions:  []string{"Sábado 15", "Domingo 16"},
		VoteClosesAt: time.Now().Add(72 * time.Hour),
	}
}

func TestCreateVoteRequestValidation(t *testing.T) {
	v := validator.New()

	require.NoError(t, v.Struct(validCreateVoteRequest()))

	t.Run("single option rejected", func(t *testing.T) {
		req := validCreateVoteRequest()
		req.VoteOptions = []string{"Única"}
		assert.Error(t, v.Struct(req))
	})

	t.Run("empty option rejected", func(t *testing.T) {
		req := validCreateVoteRequest()
		req.VoteOptions = []string{"Sábado 15", ""}
		assert.Error(t, v.Struct(req))
	})

	t.Run("short question rejected", func(t *testing.T) {
		req := validCreateVoteRequest()
		req.VoteQuestion = "¿?"
		assert.Error(t, v.Struct(req))
	})
}

func TestOptionsRoundTripThroughModel(t *testing.T) {
	req := validCreateVoteRequest()
	mdl, err := req.ToModel(uuid.New())
	require.NoError(t, err)

	opts, err := DecodeOptions(mdl)
	require.NoError(t, err)
	assert.Equal(t, req.VoteOptions, opts)
}

func TestVoteResponseOpenState(t *testing.T) {
	req := validCreateVoteRequest()
	mdl, err := req.ToModel(uuid.New())
	require.NoError(t, err)

	now := time.Now()
	resp, err := NewVoteResponse(mdl, now)
	require.NoError(t, err)
	assert.True(t, resp.VoteIsOpen)

	resp, err = NewVoteResponse(mdl, mdl.VoteClosesAt.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, resp.VoteIsOpen)
}
