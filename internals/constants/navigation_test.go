package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuPaths(items []MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Path)
	}
	return out
}

func TestNavigationForTeacherBasicSchool(t *testing.T) {
	menu := NavigationFor(RoleTeacher, InstitutionBasicSchool)
	paths := menuPaths(menu)

	assert.Contains(t, paths, "/docente/calificaciones")
	assert.Contains(t, paths, "/docente/asistencia")
	assert.Contains(t, paths, "/docente/libro-clases")
	// Daycare tooling never shows outside preschool
	assert.NotContains(t, paths, "/docente/sala-cuna")
}

func TestNavigationForTeacherPreschool(t *testing.T) {
	menu := NavigationFor(RoleTeacher, InstitutionPreschool)
	paths := menuPaths(menu)

	assert.Contains(t, paths, "/docente/sala-cuna")
	// No numeric grading in preschool
	assert.NotContains(t, paths, "/docente/calificaciones")
	assert.NotContains(t, paths, "/docente/libro-clases")
}

func TestNavigationItemsWithoutFeatureAlwaysVisible(t *testing.T) {
	for _, it := range AllInstitutionTypes {
		menu := NavigationFor(RoleTeacher, it)
		require.NotEmpty(t, menu, "teacher menu empty for %s", it)
		assert.Equal(t, "/docente", menu[0].Path)
	}
}

func TestNavigationForUnknownRole(t *testing.T) {
	assert.Empty(t, NavigationFor("visitante", InstitutionBasicSchool))
}

func TestNavigationForIsDeterministic(t *testing.T) {
	a := NavigationFor(RoleParent, InstitutionHighSchool)
	b := NavigationFor(RoleParent, InstitutionHighSchool)
	assert.Equal(t, a, b)
}
