package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterCode(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{StatusPresente, "P"},
		{StatusAusente, "A"},
		{StatusAtrasado, "T"},
		{StatusJustificado, "J"},
		{StatusRetirado, "R"},
		{"DESCONOCIDO", "-"},
		{"", "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterCode(tt.status), "status %q", tt.status)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("presente"))
	assert.False(t, IsValidStatus(""))
}
