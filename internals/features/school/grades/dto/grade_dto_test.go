package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateGradeRequest() CreateGradeRequest {
	return CreateGradeRequest{
		GradeStudentId:      uuid.New(),
		GradeCourseId:       uuid.New(),
		GradeSubject:        "Matemática",
		GradeEvaluationType: "PRUEBA",
		GradeEvaluationName: "Prueba de fracciones",
		GradeDate:           time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		GradeValue:          5.5,
		GradeMaxValue:       7.0,
		GradePeriod:         "PRIMER_SEMESTRE",
	}
}

func TestCreateGradeRequestValidation(t *testing.T) {
	v := validator.New()

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, v.Struct(validCreateGradeRequest()))
	})

	t.Run("value below scale rejected", func(t *testing.T) {
		req := validCreateGradeRequest()
		req.GradeValue = 0.5
		assert.Error(t, v.Struct(req))
	})

	t.Run("value above scale rejected", func(t *testing.T) {
		req := validCreateGradeRequest()
		req.GradeValue = 7.5
		assert.Error(t, v.Struct(req))
	})

	t.Run("value above max value rejected", func(t *testing.T) {
		req := validCreateGradeRequest()
		req.GradeMaxValue = 6.0
		req.GradeValue = 6.5
		assert.Error(t, v.Struct(req))
	})

	t.Run("value equal to max value passes", func(t *testing.T) {
		req := validCreateGradeRequest()
		req.GradeMaxValue = 6.0
		req.GradeValue = 6.0
		assert.NoError(t, v.Struct(req))
	})

	t.Run("percentage out of range rejected", func(t *testing.T) {
		req := validCreateGradeRequest()
		pct := 120.0
		req.GradePercentage = &pct
		assert.Error(t, v.Struct(req))

		pct = -1.0
		assert.Error(t, v.Struct(req))
	})

	t.Run("percentage in range passes", func(t *testing.T) {
		req := validCreateGradeRequest()
		pct := 60.0
		req.GradePercentage = &pct
		assert.NoError(t, v.Struct(req))
	})

	t.Run("short evaluation name rejected", func(t *testing.T) {
		req := validCreateGradeRequest()
		req.GradeEvaluationName = "ab"
		assert.Error(t, v.Struct(req))
	})

	t.Run("unknown period rejected", func(t *testing.T) {
		req := validCreateGradeRequest()
		req.GradePeriod = "TRIMESTRE"
		assert.Error(t, v.Struct(req))
	})

	t.Run("unknown evaluation type rejected", func(t *testing.T) {
		req := validCreateGradeRequest()
		req.GradeEvaluationType = "QUIZ"
		assert.Error(t, v.Struct(req))
	})
}

func TestNewGradeResponseDerivedFields(t *testing.T) {
	teacherID := uuid.New()
	mdl := validCreateGradeRequest().ToModel(teacherID)

	resp := NewGradeResponse(mdl)
	assert.Equal(t, teacherID, resp.GradeTeacherId)
	assert.Equal(t, "Bueno", resp.GradeStatus)
	assert.True(t, resp.GradePassing)

	mdl.GradeValue = 3.5
	resp = NewGradeResponse(mdl)
	assert.Equal(t, "Insuficiente", resp.GradeStatus)
	assert.False(t, resp.GradePassing)
}
