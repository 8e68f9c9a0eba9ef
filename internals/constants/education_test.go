package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradesForBasicSchoolIsExactlyTheEightBasicGrades(t *testing.T) {
	// Exactly these eight labels, in this order, and nothing else.
	want := []string{
		"1° Básico", "2° Básico", "3° Básico", "4° Básico",
		"5° Básico", "6° Básico", "7° Básico", "8° Básico",
	}
	assert.Equal(t, want, GradesForInstitutionType(InstitutionBasicSchool))
}

func TestLevelsForInstitutionType(t *testing.T) {
	tests := []struct {
		name     string
		t        InstitutionType
		wantIDs  []string
		excludes []string
	}{
		{
			name:     "preschool",
			t:        InstitutionPreschool,
			wantIDs:  []string{"sala_cuna", "parvularia"},
			excludes: []string{"basica", "media"},
		},
		{
			name:     "basic school",
			t:        InstitutionBasicSchool,
			wantIDs:  []string{"basica"},
			excludes: []string{"sala_cuna", "parvularia", "universitaria"},
		},
		{
			name:     "high school",
			t:        InstitutionHighSchool,
			wantIDs:  []string{"media"},
			excludes: []string{"sala_cuna", "basica"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := LevelsForInstitutionType(tt.t)
			ids := make([]string, 0, len(levels))
			for _, lvl := range levels {
				ids = append(ids, lvl.ID)
			}
			for _, want := range tt.wantIDs {
				assert.Contains(t, ids, want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, ids, not)
			}
		})
	}
}

func TestLevelsAreOrderedByAge(t *testing.T) {
	for _, it := range AllInstitutionTypes {
		levels := LevelsForInstitutionType(it)
		for i := 1; i < len(levels); i++ {
			assert.LessOrEqual(t, levels[i-1].AgeMin, levels[i].AgeMin,
				"levels out of order for %s", it)
		}
	}
}

func TestShouldShowFeature(t *testing.T) {
	tests := []struct {
		feature string
		t       InstitutionType
		want    bool
	}{
		{"daycare_features", InstitutionPreschool, true},
		{"daycare_features", InstitutionBasicSchool, false},
		{"daycare_features", InstitutionUniversity, false},
		{"unknown_feature", InstitutionBasicSchool, false},
	}
	for _, tt := range tests {
		got := ShouldShowFeature(tt.feature, tt.t)
		assert.Equal(t, tt.want, got, "%s on %s", tt.feature, tt.t)
	}
}

func TestIsValidInstitutionType(t *testing.T) {
	for _, it := range AllInstitutionTypes {
		assert.True(t, IsValidInstitutionType(string(it)))
	}
	assert.False(t, IsValidInstitutionType("KINDERGARTEN"))
	assert.False(t, IsValidInstitutionType(""))
	assert.False(t, IsValidInstitutionType("basic_school"))
}

func TestSubjectsForInstitutionType(t *testing.T) {
	basic := SubjectsForInstitutionType(InstitutionBasicSchool)
	require.NotEmpty(t, basic)
	assert.Contains(t, basic, "Matemática")
	assert.Contains(t, basic, "Lenguaje y Comunicación")
}
