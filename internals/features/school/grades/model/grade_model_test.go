package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{7.0, "Excelente"},
		{6.0, "Excelente"},
		{5.9, "Bueno"},
		{5.0, "Bueno"},
		{4.9, "Suficiente"},
		{4.0, "Suficiente"},
		{3.9, "Insuficiente"},
		{3.5, "Insuficiente"},
		{1.0, "Insuficiente"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusLabel(tt.value), "value %.1f", tt.value)
	}
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(GradePass))
	assert.True(t, IsPassing(7.0))
	assert.False(t, IsPassing(3.9))
	assert.False(t, IsPassing(GradeMin))
}
