package service

import (
	"encoding/base64"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	attendancemodel "miescuela_backend/internals/features/school/attendance/model"
	grademodel "miescuela_backend/internals/features/school/grades/model"
)

// BuildHTML renders the whole Libro de Clases as one self-contained HTML
// document, ready for the headless-browser PDF pass. Every user-supplied
// string goes through esc before interpolation.
func BuildHTML(data *LibroClasesData) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html><html lang="es"><head><meta charset="utf-8"><title>Libro de Clases</title>`)
	b.WriteString("<style>")
	b.WriteString(documentCSS)
	b.WriteString("</style></head><body>")

	writeHeader(&b, data)
	writeCourseBlock(&b, data)

	for _, section := range buildSections(data) {
		writeSection(&b, section)
	}

	writeSignatureBlock(&b, data)
	writeFooter(&b, data)

	b.WriteString("</body></html>")
	return b.String()
}

const documentCSS = `
body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 10px; color: #1a1a1a; margin: 0; }
h1 { font-size: 18px; text-align: center; letter-spacing: 2px; margin: 4px 0; }
h2 { font-size: 12px; border-bottom: 1px solid #333; padding-bottom: 2px; margin: 18px 0 6px; }
.header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 8px; }
.meta { font-size: 9px; color: #444; text-align: center; margin: 4px 0 12px; }
.course-info { margin: 8px 0; }
.course-info td { padding: 2px 10px 2px 0; }
table.data { width: 100%; border-collapse: collapse; page-break-inside: auto; }
table.data th { background: #e8e8e8; border: 1px solid #999; padding: 3px 5px; text-align: left; }
table.data td { border: 1px solid #bbb; padding: 3px 5px; vertical-align: top; }
tr { page-break-inside: avoid; }
.badge { display: inline-block; padding: 1px 6px; border-radius: 3px; font-weight: bold; }
.badge-pass { background: #d4edda; color: #155724; }
.badge-fail { background: #f8d7da; color: #721c24; }
.empty { font-style: italic; color: #777; padding: 6px 0; }
.signatures { display: flex; justify-content: space-around; margin-top: 60px; page-break-inside: avoid; }
.signature { text-align: center; width: 30%; }
.signature .line { border-top: 1px solid #000; margin-top: 40px; padding-top: 4px; }
.footer { margin-top: 24px; font-size: 8px; color: #666; text-align: center; border-top: 1px solid #ccc; padding-top: 6px; }
.qr { text-align: center; margin-top: 12px; }
`

/* =========================================================
 * DOCUMENT BLOCKS
 * ========================================================= */

func writeHeader(b *strings.Builder, data *LibroClasesData) {
	b.WriteString(`<div class="header">`)
	fmt.Fprintf(b, `<div>%s</div>`, esc(data.Institution.Name))
	if data.Institution.RBD != "" {
		fmt.Fprintf(b, `<div>RBD %s</div>`, esc(data.Institution.RBD))
	}
	b.WriteString(`<h1>LIBRO DE CLASES</h1>`)
	fmt.Fprintf(b, `<div>Año Escolar %d</div>`, data.AcademicYear)
	b.WriteString(`</div>`)

	fmt.Fprintf(b, `<div class="meta">Curso: %s %s · Profesor(a) Jefe: %s · Período: %s · Exportado: %s</div>`,
		esc(data.Course.CourseGrade), esc(data.Course.CourseSection),
		esc(data.TeacherName),
		esc(PeriodLabel(data.Period)),
		formatDateTimeCL(data.GeneratedAt))
}

func writeCourseBlock(b *strings.Builder, data *LibroClasesData) {
	b.WriteString(`<h2>Información del Curso</h2><table class="course-info"><tr>`)
	fmt.Fprintf(b, `<td><strong>Nombre:</strong> %s</td>`, esc(data.Course.CourseName))
	fmt.Fprintf(b, `<td><strong>Nivel:</strong> %s</td>`, esc(data.Course.CourseLevel))
	fmt.Fprintf(b, `<td><strong>Matrícula:</strong> %d estudiantes</td>`, len(data.Students))
	b.WriteString(`</tr><tr>`)
	fmt.Fprintf(b, `<td colspan="3"><strong>Asignaturas:</strong> %s</td>`, esc(strings.Join(data.Course.CourseSubjects, ", ")))
	b.WriteString(`</tr></table>`)
}

func writeSection(b *strings.Builder, s Section) {
	fmt.Fprintf(b, `<h2>%s</h2>`, esc(s.Title))

	switch content := s.Content.(type) {
	case EmptySection:
		fmt.Fprintf(b, `<div class="empty">%s</div>`, esc(content.Placeholder))
	case TableSection:
		b.WriteString(`<table class="data"><thead><tr>`)
		for _, h := range content.Headers {
			fmt.Fprintf(b, `<th>%s</th>`, esc(h))
		}
		b.WriteString(`</tr></thead><tbody>`)
		for _, row := range content.Rows {
			b.WriteString(`<tr>`)
			for _, cell := range row {
				if cell.Raw {
					fmt.Fprintf(b, `<td>%s</td>`, cell.Text)
				} else {
					fmt.Fprintf(b, `<td>%s</td>`, esc(cell.Text))
				}
			}
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table>`)
	}
}

func writeSignatureBlock(b *strings.Builder, data *LibroClasesData) {
	b.WriteString(`<div class="signatures">`)
	for _, role := range []string{"Profesor(a) Jefe", "Director(a)", "Timbre del Establecimiento"} {
		fmt.Fprintf(b, `<div class="signature"><div class="line">%s</div></div>`, esc(role))
	}
	b.WriteString(`</div>`)

	if data.VerifyURL != "" {
		if png, err := qrcode.Encode(data.VerifyURL, qrcode.Medium, 112); err == nil {
			fmt.Fprintf(b, `<div class="qr"><img src="data:image/png;base64,%s" alt="verificación"/><div>Verificación del documento</div></div>`,
				base64.StdEncoding.EncodeToString(png))
		}
	}
}

func writeFooter(b *strings.Builder, data *LibroClasesData) {
	parts := []string{}
	if data.Institution.Address != "" {
		parts = append(parts, data.Institution.Address)
	}
	if data.Institution.Phone != "" {
		parts = append(parts, "Tel: "+data.Institution.Phone)
	}
	if data.Institution.Email != "" {
		parts = append(parts, data.Institution.Email)
	}
	if data.Institution.Website != "" {
		parts = append(parts, data.Institution.Website)
	}
	fmt.Fprintf(b, `<div class="footer">%s · Documento generado el %s</div>`,
		esc(strings.Join(parts, " · ")), formatDateTimeCL(data.GeneratedAt))
}

/* =========================================================
 * SECTION GENERATORS
 * Each generator is independent and collapses to a "no data"
 * placeholder on empty input, so partial data never blocks the
 * rest of the document.
 * ========================================================= */

func buildSections(data *LibroClasesData) []Section {
	return []Section{
		{Title: "Registro de Asistencia", Content: buildAttendanceSection(data)},
		{Title: "Calificaciones", Content: buildGradesSection(data)},
		{Title: "Observaciones / Hoja de Vida", Content: buildObservationsSection(data)},
		{Title: "Registro de Contenidos (Leccionario)", Content: buildClassContentSection(data)},
		{Title: "Reuniones de Apoderados", Content: buildMeetingsSection(data)},
	}
}

func buildAttendanceSection(data *LibroClasesData) SectionContent {
	type row struct {
		date    time.Time
		student string
		status  string
		comment string
	}
	var flat []row
	for _, sr := range data.Students {
		for _, a := range sr.Attendance {
			comment := ""
			if a.AttendanceComment != nil {
				comment = *a.AttendanceComment
			}
			flat = append(flat, row{
				date:    a.AttendanceDate,
				student: sr.Student.StudentFullName,
				status:  a.AttendanceStatus,
				comment: comment,
			})
		}
	}
	// Grouped by date, then by student, one row per student per date.
	sort.SliceStable(flat, func(i, j int) bool {
		if !flat[i].date.Equal(flat[j].date) {
			return flat[i].date.Before(flat[j].date)
		}
		return flat[i].student < flat[j].student
	})

	rows := make([][]Cell, 0, len(flat))
	for _, r := range flat {
		rows = append(rows, []Cell{
			text(formatDateCL(r.date)),
			text(r.student),
			text(attendancemodel.LetterCode(r.status)),
			text(statusLabelES(r.status)),
			text(r.comment),
		})
	}
	return NewTableSection(
		[]string{"Fecha", "Estudiante", "Código", "Estado", "Observación"},
		rows,
		"Sin registros de asistencia para el período",
	)
}

func buildGradesSection(data *LibroClasesData) SectionContent {
	var rows [][]Cell
	for _, sr := range data.Students {
		for _, g := range sr.Grades {
			badgeClass := "badge-fail"
			if grademodel.IsPassing(g.GradeValue) {
				badgeClass = "badge-pass"
			}
			badge := fmt.Sprintf(`<span class="badge %s">%.1f</span>`, badgeClass, g.GradeValue)
			rows = append(rows, []Cell{
				text(sr.Student.StudentFullName),
				text(g.GradeSubject),
				text(g.GradeEvaluationName),
				text(formatDateCL(g.GradeDate)),
				rawCell(badge),
				text(grademodel.StatusLabel(g.GradeValue)),
				text(PeriodLabel(g.GradePeriod)),
			})
		}
	}
	return NewTableSection(
		[]string{"Estudiante", "Asignatura", "Evaluación", "Fecha", "Nota", "Estado", "Período"},
		rows,
		"Sin calificaciones registradas para el período",
	)
}

func buildObservationsSection(data *LibroClasesData) SectionContent {
	var rows [][]Cell
	for _, sr := range data.Students {
		for _, o := range sr.Observations {
			rows = append(rows, []Cell{
				text(formatDateCL(o.ObservationDate)),
				text(sr.Student.StudentFullName),
				text(observationTypeLabel(o.ObservationType)),
				text(o.ObservationText),
			})
		}
	}
	return NewTableSection(
		[]string{"Fecha", "Estudiante", "Tipo", "Observación"},
		rows,
		"Sin observaciones registradas",
	)
}

func buildClassContentSection(data *LibroClasesData) SectionContent {
	rows := make([][]Cell, 0, len(data.ClassContent))
	for _, cc := range data.ClassContent {
		activities := ""
		if cc.ClassContentActivities != nil {
			activities = *cc.ClassContentActivities
		}
		rows = append(rows, []Cell{
			text(formatDateCL(cc.ClassContentDate)),
			text(cc.ClassContentSubject),
			text(cc.ClassContentTopic),
			text(activities),
		})
	}
	return NewTableSection(
		[]string{"Fecha", "Asignatura", "Contenido", "Actividades"},
		rows,
		"Sin contenidos registrados en el leccionario",
	)
}

func buildMeetingsSection(data *LibroClasesData) SectionContent {
	rows := make([][]Cell, 0, len(data.Meetings))
	for _, mt := range data.Meetings {
		attended := "No"
		if mt.MeetingAttendanceAttended {
			attended = "Sí"
		}
		rep, rel := "", ""
		if mt.MeetingAttendanceRepresentativeName != nil {
			rep = *mt.MeetingAttendanceRepresentativeName
		}
		if mt.MeetingAttendanceRelationship != nil {
			rel = *mt.MeetingAttendanceRelationship
		}
		agreements := ""
		if mt.MeetingAttendanceAgreements != nil {
			agreements = *mt.MeetingAttendanceAgreements
		}
		rows = append(rows, []Cell{
			text(formatDateCL(mt.MeetingAttendanceDate)),
			text(fmt.Sprintf("Reunión N°%d", mt.MeetingAttendanceNumber)),
			text(attended),
			text(rep),
			text(rel),
			text(agreements),
		})
	}
	return NewTableSection(
		[]string{"Fecha", "Sesión", "Asistió", "Representante", "Parentesco", "Acuerdos"},
		rows,
		"Sin reuniones de apoderados registradas",
	)
}

/* =========================================================
 * FORMATTING HELPERS
 * ========================================================= */

// esc escapes user-supplied text before HTML interpolation: &, <, >, " and '
// all become entities.
func esc(s string) string {
	return html.EscapeString(s)
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatDateCL renders dates the way es-CL does: dd-mm-yyyy.
func formatDateCL(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02-01-2006")
}

func formatDateTimeCL(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%02d de %s de %d, %02d:%02d",
		t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// PeriodLabel maps period codes to their short printed labels.
func PeriodLabel(period string) string {
	switch period {
	case grademodel.PeriodPrimerSemestre:
		return "1° Sem"
	case grademodel.PeriodSegundoSemestre:
		return "2° Sem"
	case grademodel.PeriodAnual:
		return "Anual"
	default:
		return period
	}
}

func statusLabelES(status string) string {
	switch status {
	case attendancemodel.StatusPresente:
		return "Presente"
	case attendancemodel.StatusAusente:
		return "Ausente"
	case attendancemodel.StatusAtrasado:
		return "Atrasado"
	case attendancemodel.StatusJustificado:
		return "Justificado"
	case attendancemodel.StatusRetirado:
		return "Retirado"
	default:
		return status
	}
}

func observationTypeLabel(t string) string {
	switch t {
	case "POSITIVA":
		return "Positiva"
	case "NEGATIVA":
		return "Negativa"
	case "NEUTRA":
		return "Neutra"
	default:
		return t
	}
}
