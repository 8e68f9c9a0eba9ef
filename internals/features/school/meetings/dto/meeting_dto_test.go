package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBulkMeetingRequest() BulkRecordMeetingRequest {
	name := "María Pérez"
	rel := "madre"
	return BulkRecordMeetingRequest{
		CourseId:      uuid.New(),
		MeetingDate:   time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		MeetingNumber: 2,
		Entries: []MeetingEntry{
			{
				StudentId:          uuid.New(),
				ParentId:           uuid.New(),
				Attended:           true,
				RepresentativeName: &name,
				Relationship:       &rel,
			},
			{
				StudentId: uuid.New(),
				ParentId:  uuid.New(),
				Attended:  false,
			},
		},
	}
}

func TestBulkRecordMeetingRequestValidate(t *testing.T) {
	t.Run("valid request has no errors", func(t *testing.T) {
		assert.Nil(t, validBulkMeetingRequest().Validate())
	})

	t.Run("missing meeting date rejects the batch", func(t *testing.T) {
		req := validBulkMeetingRequest()
		req.MeetingDate = time.Time{}
		errs := req.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "meeting_date")
	})

	t.Run("zero entries rejects the batch", func(t *testing.T) {
		req := validBulkMeetingRequest()
		req.Entries = nil
		errs := req.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "entries")
	})

	t.Run("representative without relationship rejected", func(t *testing.T) {
		req := validBulkMeetingRequest()
		req.Entries[0].Relationship = nil
		errs := req.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "relationship")
	})

	t.Run("absent entry needs no representative data", func(t *testing.T) {
		req := validBulkMeetingRequest()
		req.Entries = req.Entries[1:]
		assert.Nil(t, req.Validate())
	})
}

func TestToModelsCarriesSessionFields(t *testing.T) {
	req := validBulkMeetingRequest()
	registeredBy := uuid.New()

	models := req.ToModels(registeredBy)
	require.Len(t, models, 2)

	for _, mdl := range models {
		assert.Equal(t, req.CourseId, mdl.MeetingAttendanceCourseId)
		assert.Equal(t, req.MeetingDate, mdl.MeetingAttendanceDate)
		assert.Equal(t, req.MeetingNumber, mdl.MeetingAttendanceNumber)
		assert.Equal(t, registeredBy, mdl.MeetingAttendanceRegisteredBy)
	}
	assert.True(t, models[0].MeetingAttendanceAttended)
	assert.False(t, models[1].MeetingAttendanceAttended)
}
