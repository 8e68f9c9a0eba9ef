package service

import (
	"time"

	"github.com/google/uuid"

	attendancemodel "miescuela_backend/internals/features/school/attendance/model"
	classcontentmodel "miescuela_backend/internals/features/school/classcontent/model"
	coursemodel "miescuela_backend/internals/features/school/courses/model"
	grademodel "miescuela_backend/internals/features/school/grades/model"
	meetingmodel "miescuela_backend/internals/features/school/meetings/model"
	observationmodel "miescuela_backend/internals/features/school/observations/model"
)

// Export scopes
const (
	ScopeFullYear      = "FULL_YEAR"
	ScopeSemester      = "SEMESTER"
	ScopeSingleStudent = "SINGLE_STUDENT"
	ScopeSingleCourse  = "SINGLE_COURSE"
)

// InstitutionInfo is the fixed header block of the printed book.
type InstitutionInfo struct {
	Name    string
	RBD     string
	Phone   string
	Email   string
	Address string
	Website string
}

// StudentRecord groups everything the book prints about one pupil.
type StudentRecord struct {
	Student      coursemodel.StudentModel
	Attendance   []attendancemodel.AttendanceModel
	Grades       []grademodel.GradeModel
	Observations []observationmodel.ObservationModel
}

// LibroClasesData is the transient aggregate assembled for one render.
// It is never persisted.
type LibroClasesData struct {
	Institution  InstitutionInfo
	Course       coursemodel.CourseModel
	TeacherName  string
	AcademicYear int
	Scope        string
	Period       string // PRIMER_SEMESTRE | SEGUNDO_SEMESTRE | ANUAL

	Students     []StudentRecord
	ClassContent []classcontentmodel.ClassContentModel
	Meetings     []meetingmodel.MeetingAttendanceModel

	GeneratedAt time.Time
	GeneratedBy uuid.UUID
	VerifyURL   string // encoded into the QR stamp; empty disables the QR
}

/* =========================================================
 * SECTION SUM TYPE
 * ========================================================= */

// SectionContent is an explicit sum: a section either has rows or is
// empty with a placeholder. The renderer branches on the type, so "no
// data" is a case, not a length check.
type SectionContent interface {
	isSectionContent()
}

type EmptySection struct {
	Placeholder string
}

type TableSection struct {
	Headers []string
	Rows    [][]Cell
}

func (EmptySection) isSectionContent() {}
func (TableSection) isSectionContent() {}

// Cell is one table cell. Raw cells carry markup produced by the builder
// itself (badges); non-raw cells are escaped before interpolation.
type Cell struct {
	Text string
	Raw  bool
}

func text(s string) Cell    { return Cell{Text: s} }
func rawCell(s string) Cell { return Cell{Text: s, Raw: true} }

// Section pairs a title with its content.
type Section struct {
	Title   string
	Content SectionContent
}

// NewTableSection builds the sum-type value: zero rows collapse to the
// empty case up front.
func NewTableSection(headers []string, rows [][]Cell, placeholder string) SectionContent {
	if len(rows) == 0 {
		return EmptySection{Placeholder: placeholder}
	}
	return TableSection{Headers: headers, Rows: rows}
}
