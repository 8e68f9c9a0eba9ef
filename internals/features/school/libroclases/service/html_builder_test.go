package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendancemodel "miescuela_backend/internals/features/school/attendance/model"
	coursemodel "miescuela_backend/internals/features/school/courses/model"
	grademodel "miescuela_backend/internals/features/school/grades/model"
)

func minimalData() *LibroClasesData {
	return &LibroClasesData{
		Institution: InstitutionInfo{
			Name: "Escuela Los Aromos",
			RBD:  "12345-6",
		},
		Course: coursemodel.CourseModel{
			CourseId:      uuid.New(),
			CourseName:    "3° Básico A",
			CourseGrade:   "3° Básico",
			CourseSection: "A",
			CourseLevel:   "basica",
		},
		TeacherName:  "Ana Rojas",
		AcademicYear: 2025,
		Scope:        ScopeFullYear,
		Period:       grademodel.PeriodAnual,
		GeneratedAt:  time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestBuildHTMLEmptyDataRendersPlaceholders(t *testing.T) {
	html := BuildHTML(minimalData())

	assert.Contains(t, html, "LIBRO DE CLASES")
	assert.Contains(t, html, "Escuela Los Aromos")
	assert.Contains(t, html, "RBD 12345-6")
	assert.Contains(t, html, "Año Escolar 2025")

	// Every section falls back to its placeholder; none panics or vanishes.
	assert.Contains(t, html, "Sin registros de asistencia para el período")
	assert.Contains(t, html, "Sin calificaciones registradas para el período")
	assert.Contains(t, html, "Sin observaciones registradas")
	assert.Contains(t, html, "Sin contenidos registrados en el leccionario")
	assert.Contains(t, html, "Sin reuniones de apoderados registradas")
}

func TestBuildHTMLEscapesUserText(t *testing.T) {
	data := minimalData()
	data.Institution.Name = `Escuela <script>alert("x")</script> & Cía's`

	html := BuildHTML(data)
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&amp; Cía")
}

func TestBuildHTMLGradeBadges(t *testing.T) {
	data := minimalData()
	data.Students = []StudentRecord{
		{
			Student: coursemodel.StudentModel{StudentFullName: "Pedro Soto"},
			Grades: []grademodel.GradeModel{
				{
					GradeSubject:        "Matemática",
					GradeEvaluationName: "Prueba 1",
					GradeValue:          4.0,
					GradeMaxValue:       7.0,
					GradePeriod:         grademodel.PeriodPrimerSemestre,
					GradeDate:           time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
				},
				{
					GradeSubject:        "Matemática",
					GradeEvaluationName: "Prueba 2",
					GradeValue:          3.9,
					GradeMaxValue:       7.0,
					GradePeriod:         grademodel.PeriodPrimerSemestre,
					GradeDate:           time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}

	html := BuildHTML(data)
	// 4.0 is the legal pass threshold
	assert.Contains(t, html, `<span class="badge badge-pass">4.0</span>`)
	assert.Contains(t, html, `<span class="badge badge-fail">3.9</span>`)
	assert.Contains(t, html, "Suficiente")
	assert.Contains(t, html, "Insuficiente")
	assert.Contains(t, html, "1° Sem")
}

func TestBuildHTMLAttendanceLetterCodes(t *testing.T) {
	data := minimalData()
	data.Students = []StudentRecord{
		{
			Student: coursemodel.StudentModel{StudentFullName: "Carla Muñoz"},
			Attendance: []attendancemodel.AttendanceModel{
				{
					AttendanceDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					AttendanceStatus: attendancemodel.StatusAtrasado,
				},
			},
		},
	}

	html := BuildHTML(data)
	assert.Contains(t, html, "<td>T</td>")
	assert.Contains(t, html, "Atrasado")
	assert.Contains(t, html, "10-03-2025")
}

func TestBuildHTMLQROnlyWithVerifyURL(t *testing.T) {
	data := minimalData()
	html := BuildHTML(data)
	assert.NotContains(t, html, "data:image/png;base64")

	data.VerifyURL = "https://escuela.cl/verificar/abc"
	html = BuildHTML(data)
	assert.Contains(t, html, "data:image/png;base64")
	assert.Contains(t, html, "Verificación del documento")
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "1° Sem", PeriodLabel(grademodel.PeriodPrimerSemestre))
	assert.Equal(t, "2° Sem", PeriodLabel(grademodel.PeriodSegundoSemestre))
	assert.Equal(t, "Anual", PeriodLabel(grademodel.PeriodAnual))
	// Unknown codes pass through untouched
	assert.Equal(t, "TRIMESTRE_1", PeriodLabel("TRIMESTRE_1"))
}

func TestFormatDateCL(t *testing.T) {
	assert.Equal(t, "-", formatDateCL(time.Time{}))
	assert.Equal(t, "05-08-2025", formatDateCL(time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)))
}

func TestFormatDateTimeCL(t *testing.T) {
	got := formatDateTimeCL(time.Date(2025, 7, 1, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, "01 de julio de 2025, 09:05", got)
	assert.Equal(t, "-", formatDateTimeCL(time.Time{}))
}

func TestNewTableSectionCollapsesEmptyRows(t *testing.T) {
	content := NewTableSection([]string{"A"}, nil, "nada que mostrar")
	empty, ok := content.(EmptySection)
	require.True(t, ok)
	assert.Equal(t, "nada que mostrar", empty.Placeholder)

	content = NewTableSection([]string{"A"}, [][]Cell{{text("x")}}, "nada")
	_, ok = content.(TableSection)
	assert.True(t, ok)
}

func TestAttendanceSectionSortedByDateThenStudent(t *testing.T) {
	data := minimalData()
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	data.Students = []StudentRecord{
		{
			Student: coursemodel.StudentModel{StudentFullName: "Zoila Vega"},
			Attendance: []attendancemodel.AttendanceModel{
				{AttendanceDate: day1, AttendanceStatus: attendancemodel.StatusPresente},
			},
		},
		{
			Student: coursemodel.StudentModel{StudentFullName: "Andrés Bello"},
			Attendance: []attendancemodel.AttendanceModel{
				{AttendanceDate: day2, AttendanceStatus: attendancemodel.StatusPresente},
				{AttendanceDate: day1, AttendanceStatus: attendancemodel.StatusAusente},
			},
		},
	}

	html := BuildHTML(data)
	// day1 Andrés before day1 Zoila before day2 Andrés
	iAndres1 := strings.Index(html, "<td>10-03-2025</td><td>Andrés Bello</td>")
	iZoila := strings.Index(html, "<td>10-03-2025</td><td>Zoila Vega</td>")
	iAndres2 := strings.Index(html, "<td>11-03-2025</td><td>Andrés Bello</td>")
	require.NotEqual(t, -1, iAndres1)
	require.NotEqual(t, -1, iZoila)
	require.NotEqual(t, -1, iAndres2)
	assert.Less(t, iAndres1, iZoila)
	assert.Less(t, iZoila, iAndres2)
}
