package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"miescuela_backend/internals/configs"
	"miescuela_backend/internals/constants"
	helper "miescuela_backend/internals/helpers"
)

// ConfigController serves the static educational-system catalog. Nothing
// here touches the database; the catalog is compiled in.
type ConfigController struct{}

func NewConfigController() *ConfigController {
	return &ConfigController{}
}

func institutionTypeFromQuery(c *fiber.Ctx) (constants.InstitutionType, bool) {
	raw := strings.ToUpper(strings.TrimSpace(c.Query("institution_type", configs.SchoolInstitutionType)))
	return constants.InstitutionType(raw), constants.IsValidInstitutionType(raw)
}

// GET /api/u/config/levels?institution_type=
func (ctrl *ConfigController) GetLevels(c *fiber.Ctx) error {
	t, ok := institutionTypeFromQuery(c)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "institution_type inválido")
	}
	return helper.Success(c, "OK", fiber.Map{
		"institution_type": t,
		"levels":           constants.LevelsForInstitutionType(t),
	})
}

// GET /api/u/config/grades?institution_type=
func (ctrl *ConfigController) GetGrades(c *fiber.Ctx) error {
	t, ok := institutionTypeFromQuery(c)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "institution_type inválido")
	}
	return helper.Success(c, "OK", fiber.Map{
		"institution_type": t,
		"grades":           constants.GradesForInstitutionType(t),
	})
}

// GET /api/u/config/subjects?institution_type=
func (ctrl *ConfigController) GetSubjects(c *fiber.Ctx) error {
	t, ok := institutionTypeFromQuery(c)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "institution_type inválido")
	}
	return helper.Success(c, "OK", fiber.Map{
		"institution_type": t,
		"subjects":         constants.SubjectsForInstitutionType(t),
	})
}

// GET /api/u/config/features/:feature?institution_type=
func (ctrl *ConfigController) GetFeatureVisibility(c *fiber.Ctx) error {
	t, ok := institutionTypeFromQuery(c)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "institution_type inválido")
	}
	feature := strings.TrimSpace(c.Params("feature"))
	if feature == "" {
		return helper.Error(c, fiber.StatusBadRequest, "feature es obligatorio")
	}
	return helper.Success(c, "OK", fiber.Map{
		"institution_type": t,
		"feature":          feature,
		"visible":          constants.ShouldShowFeature(feature, t),
	})
}

// GET /api/u/navigation
// The menu is derived from the caller's role plus the school's
// institution type.
func (ctrl *ConfigController) GetNavigation(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	t := constants.InstitutionType(configs.SchoolInstitutionType)
	if !constants.IsValidInstitutionType(configs.SchoolInstitutionType) {
		t = constants.InstitutionBasicSchool
	}
	return helper.Success(c, "OK", fiber.Map{
		"role":             role,
		"institution_type": t,
		"menu":             constants.NavigationFor(role, t),
	})
}
