package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3° Básico A", "3-bsico-a"},
		{"  Curso_2025  ", "curso-2025"},
		{"IV° Medio B", "iv-medio-b"},
		{"", "curso"},
		{"°°°", "curso"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}
