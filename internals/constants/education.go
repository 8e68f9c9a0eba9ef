package constants

// Static description of the Chilean educational system: institution types,
// their educational levels (normalized to ISCED), subject lists and feature
// visibility. Pure lookup tables, no persistence.

type InstitutionType string

const (
	InstitutionPreschool          InstitutionType = "PRESCHOOL"
	InstitutionBasicSchool        InstitutionType = "BASIC_SCHOOL"
	InstitutionHighSchool         InstitutionType = "HIGH_SCHOOL"
	InstitutionTechnicalInstitute InstitutionType = "TECHNICAL_INSTITUTE"
	InstitutionTechnicalCenter    InstitutionType = "TECHNICAL_CENTER"
	InstitutionUniversity         InstitutionType = "UNIVERSITY"
)

var AllInstitutionTypes = []InstitutionType{
	InstitutionPreschool,
	InstitutionBasicSchool,
	InstitutionHighSchool,
	InstitutionTechnicalInstitute,
	InstitutionTechnicalCenter,
	InstitutionUniversity,
}

type EducationalLevel struct {
	ID          string            `json:"id"`
	ChileanName string            `json:"chilean_name"`
	ISCEDCode   int               `json:"isced_code"`
	AgeMin      int               `json:"age_min"`
	AgeMax      int               `json:"age_max"`
	Grades      []string          `json:"grades"`
	AppliesTo   []InstitutionType `json:"applies_to"`
}

var educationalLevels = []EducationalLevel{
	{
		ID:          "sala_cuna",
		ChileanName: "Sala Cuna",
		ISCEDCode:   0,
		AgeMin:      0,
		AgeMax:      2,
		Grades:      []string{"Sala Cuna Menor", "Sala Cuna Mayor"},
		AppliesTo:   []InstitutionType{InstitutionPreschool},
	},
	{
		ID:          "parvularia",
		ChileanName: "Educación Parvularia",
		ISCEDCode:   0,
		AgeMin:      2,
		AgeMax:      5,
		Grades:      []string{"Medio Menor", "Medio Mayor", "Pre-Kínder", "Kínder"},
		AppliesTo:   []InstitutionType{InstitutionPreschool},
	},
	{
		ID:          "basica",
		ChileanName: "Educación Básica",
		ISCEDCode:   1,
		AgeMin:      6,
		AgeMax:      13,
		Grades: []string{
			"1° Básico", "2° Básico", "3° Básico", "4° Básico",
			"5° Básico", "6° Básico", "7° Básico", "8° Básico",
		},
		AppliesTo: []InstitutionType{InstitutionBasicSchool},
	},
	{
		ID:          "media",
		ChileanName: "Educación Media",
		ISCEDCode:   3,
		AgeMin:      14,
		AgeMax:      17,
		Grades:      []string{"I° Medio", "II° Medio", "III° Medio", "IV° Medio"},
		AppliesTo:   []InstitutionType{InstitutionHighSchool, InstitutionTechnicalInstitute},
	},
	{
		ID:          "tecnico_superior",
		ChileanName: "Educación Técnica de Nivel Superior",
		ISCEDCode:   5,
		AgeMin:      18,
		AgeMax:      99,
		Grades:      []string{"1er Año", "2do Año", "3er Año"},
		AppliesTo:   []InstitutionType{InstitutionTechnicalInstitute, InstitutionTechnicalCenter},
	},
	{
		ID:          "universitaria",
		ChileanName: "Educación Universitaria",
		ISCEDCode:   6,
		AgeMin:      18,
		AgeMax:      99,
		Grades:      []string{"1er Año", "2do Año", "3er Año", "4to Año", "5to Año", "6to Año"},
		AppliesTo:   []InstitutionType{InstitutionUniversity},
	},
}

var subjectsByInstitution = map[InstitutionType][]string{
	InstitutionPreschool: {
		"Desarrollo Personal y Social",
		"Comunicación Integral",
		"Interacción y Comprensión del Entorno",
	},
	InstitutionBasicSchool: {
		"Lenguaje y Comunicación",
		"Matemática",
		"Ciencias Naturales",
		"Historia, Geografía y Ciencias Sociales",
		"Inglés",
		"Educación Física y Salud",
		"Artes Visuales",
		"Música",
		"Tecnología",
		"Orientación",
		"Religión",
	},
	InstitutionHighSchool: {
		"Lengua y Literatura",
		"Matemática",
		"Ciencias Naturales",
		"Historia, Geografía y Ciencias Sociales",
		"Inglés",
		"Educación Física y Salud",
		"Artes",
		"Filosofía",
		"Educación Ciudadana",
		"Ciencias para la Ciudadanía",
	},
	InstitutionTechnicalInstitute: {
		"Lengua y Literatura",
		"Matemática",
		"Inglés",
		"Módulos de Especialidad",
		"Emprendimiento y Empleabilidad",
	},
	InstitutionTechnicalCenter: {
		"Módulos de Especialidad",
		"Formación General",
		"Práctica Profesional",
	},
	InstitutionUniversity: {
		"Plan Común",
		"Asignaturas de Carrera",
		"Formación General Electiva",
	},
}

// Feature visibility per institution type, consulted by navigation and the
// frontend to decide which sections of the app are shown.
var featureVisibility = map[string][]InstitutionType{
	"daycare_features": {InstitutionPreschool},
	"grades": {
		InstitutionBasicSchool, InstitutionHighSchool,
		InstitutionTechnicalInstitute, InstitutionTechnicalCenter, InstitutionUniversity,
	},
	"attendance": {
		InstitutionPreschool, InstitutionBasicSchool, InstitutionHighSchool,
		InstitutionTechnicalInstitute, InstitutionTechnicalCenter, InstitutionUniversity,
	},
	"parent_meetings": {
		InstitutionPreschool, InstitutionBasicSchool, InstitutionHighSchool,
	},
	"libro_clases": {
		InstitutionBasicSchool, InstitutionHighSchool, InstitutionTechnicalInstitute,
	},
	"votes": {
		InstitutionPreschool, InstitutionBasicSchool, InstitutionHighSchool,
	},
	"announcements": {
		InstitutionPreschool, InstitutionBasicSchool, InstitutionHighSchool,
		InstitutionTechnicalInstitute, InstitutionTechnicalCenter, InstitutionUniversity,
	},
	"higher_ed_features": {
		InstitutionTechnicalInstitute, InstitutionTechnicalCenter, InstitutionUniversity,
	},
}

// LevelsForInstitutionType returns the ordered educational levels that apply
// to the given institution type.
func LevelsForInstitutionType(t InstitutionType) []EducationalLevel {
	var out []EducationalLevel
	for _, lvl := range educationalLevels {
		for _, it := range lvl.AppliesTo {
			if it == t {
				out = append(out, lvl)
				break
			}
		}
	}
	return out
}

// GradesForInstitutionType returns every grade label of the institution type,
// in level order.
func GradesForInstitutionType(t InstitutionType) []string {
	var out []string
	for _, lvl := range LevelsForInstitutionType(t) {
		out = append(out, lvl.Grades...)
	}
	return out
}

func SubjectsForInstitutionType(t InstitutionType) []string {
	return subjectsByInstitution[t]
}

func ShouldShowFeature(feature string, t InstitutionType) bool {
	for _, it := range featureVisibility[feature] {
		if it == t {
			return true
		}
	}
	return false
}

func IsValidInstitutionType(s string) bool {
	for _, it := range AllInstitutionTypes {
		if string(it) == s {
			return true
		}
	}
	return false
}
