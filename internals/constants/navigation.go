package constants

// Role menus, data-driven from the same static tables. NavigationFor is pure:
// same role + institution type always yields the same tree.

type MenuItem struct {
	Path     string     `json:"path"`
	Label    string     `json:"label"`
	Feature  string     `json:"feature,omitempty"`
	Children []MenuItem `json:"children,omitempty"`
}

var menusByRole = map[string][]MenuItem{
	RoleAdmin: {
		{Path: "/admin", Label: "Panel de Administración"},
		{Path: "/admin/cursos", Label: "Cursos"},
		{Path: "/admin/matriculas", Label: "Matrículas"},
		{Path: "/admin/anuncios", Label: "Anuncios", Feature: "announcements"},
		{Path: "/admin/votaciones", Label: "Votaciones", Feature: "votes"},
	},
	RoleTeacher: {
		{Path: "/docente", Label: "Panel Docente"},
		{Path: "/docente/calificaciones", Label: "Calificaciones", Feature: "grades"},
		{Path: "/docente/asistencia", Label: "Asistencia", Feature: "attendance"},
		{Path: "/docente/reuniones", Label: "Reuniones de Apoderados", Feature: "parent_meetings"},
		{Path: "/docente/observaciones", Label: "Observaciones"},
		{Path: "/docente/leccionario", Label: "Leccionario", Feature: "libro_clases"},
		{Path: "/docente/libro-clases", Label: "Libro de Clases", Feature: "libro_clases"},
		{Path: "/docente/sala-cuna", Label: "Sala Cuna", Feature: "daycare_features"},
	},
	RoleParent: {
		{Path: "/apoderado", Label: "Portal Apoderado"},
		{Path: "/apoderado/calificaciones", Label: "Calificaciones", Feature: "grades"},
		{Path: "/apoderado/asistencia", Label: "Asistencia", Feature: "attendance"},
		{Path: "/apoderado/reuniones", Label: "Reuniones", Feature: "parent_meetings"},
		{Path: "/apoderado/votaciones", Label: "Votaciones", Feature: "votes"},
		{Path: "/apoderado/anuncios", Label: "Anuncios", Feature: "announcements"},
	},
	RoleMaster: {
		{Path: "/master", Label: "Panel Master"},
		{Path: "/master/usuarios", Label: "Usuarios"},
		{Path: "/master/configuracion", Label: "Configuración"},
	},
}

// NavigationFor filters the role menu through the institution's feature
// flags. Items with no Feature are always visible for the role.
func NavigationFor(role string, t InstitutionType) []MenuItem {
	var out []MenuItem
	for _, item := range menusByRole[role] {
		if item.Feature != "" && !ShouldShowFeature(item.Feature, t) {
			continue
		}
		out = append(out, item)
	}
	return out
}
