package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
	RoleMaster  = "master"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess = "Solo docentes, admin o master pueden acceder a %s."
	ErrOnlyAdminsCanAccess   = "Solo admin o master pueden acceder a %s."
	ErrOnlyParentsCanAccess  = "Solo apoderados pueden acceder a %s."
	ErrOnlyMasterCanAccess   = "Solo master puede acceder a %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentsCanAccess, feature)
}

func RoleErrorMaster(feature string) string {
	return fmt.Sprintf(ErrOnlyMasterCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleParent,
		RoleMaster,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
		RoleMaster,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleMaster,
	}

	ParentOnly = []string{
		RoleParent,
	}

	MasterOnly = []string{
		RoleMaster,
	}
)
