package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"miescuela_backend/internals/configs"
	attendancemodel "miescuela_backend/internals/features/school/attendance/model"
	classcontentmodel "miescuela_backend/internals/features/school/classcontent/model"
	coursemodel "miescuela_backend/internals/features/school/courses/model"
	grademodel "miescuela_backend/internals/features/school/grades/model"
	meetingmodel "miescuela_backend/internals/features/school/meetings/model"
	observationmodel "miescuela_backend/internals/features/school/observations/model"
	usermodel "miescuela_backend/internals/features/users/user/model"
)

// Aggregator assembles the transient LibroClasesData for one render.
type Aggregator struct {
	DB *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{DB: db}
}

// ExportScope narrows what ends up in the book.
type ExportScope struct {
	Scope     string // ScopeFullYear | ScopeSemester | ScopeSingleStudent | ScopeSingleCourse
	CourseId  uuid.UUID
	StudentId *uuid.UUID // required for ScopeSingleStudent
	Period    string     // PRIMER_SEMESTRE | SEGUNDO_SEMESTRE | ANUAL
}

// periodBounds maps a period to its date window within the academic year.
// First semester runs March through mid-July by convention.
func periodBounds(period string, year int) (time.Time, time.Time) {
	switch period {
	case grademodel.PeriodPrimerSemestre:
		return date(year, time.March, 1), date(year, time.July, 15)
	case grademodel.PeriodSegundoSemestre:
		return date(year, time.July, 16), date(year, time.December, 31)
	default:
		return date(year, time.January, 1), date(year, time.December, 31)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Collect gathers every record collection the book needs. Each collection
// failing to exist is fine (sections render their placeholder); a query
// error aborts the export.
func (a *Aggregator) Collect(scope ExportScope, generatedBy uuid.UUID) (*LibroClasesData, error) {
	var course coursemodel.CourseModel
	err := a.DB.
		Preload("Students", func(db *gorm.DB) *gorm.DB {
			return db.Order("student_full_name")
		}).
		First(&course, "course_id = ?", scope.CourseId).Error
	if err != nil {
		return nil, fmt.Errorf("curso no encontrado: %w", err)
	}

	period := scope.Period
	if period == "" || scope.Scope == ScopeFullYear {
		period = grademodel.PeriodAnual
	}
	from, to := periodBounds(period, course.CourseAcademicYear)

	students := course.Students
	if scope.Scope == ScopeSingleStudent {
		if scope.StudentId == nil {
			return nil, fmt.Errorf("student_id es obligatorio para el alcance por estudiante")
		}
		students = nil
		for _, s := range course.Students {
			if s.StudentId == *scope.StudentId {
				students = append(students, s)
				break
			}
		}
		if len(students) == 0 {
			return nil, fmt.Errorf("estudiante no matriculado en el curso")
		}
	}

	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		studentIDs = append(studentIDs, s.StudentId)
	}

	// Batch queries per collection, grouped in memory afterwards.
	var attendance []attendancemodel.AttendanceModel
	if len(studentIDs) > 0 {
		if err := a.DB.
			Where("attendance_course_id = ? AND attendance_student_id IN ? AND attendance_date BETWEEN ? AND ?",
				scope.CourseId, studentIDs, from, to).
			Order("attendance_date").
			Find(&attendance).Error; err != nil {
			return nil, err
		}
	}

	var grades []grademodel.GradeModel
	if len(studentIDs) > 0 {
		q := a.DB.
			Where("grade_course_id = ? AND grade_student_id IN ? AND grade_date BETWEEN ? AND ?",
				scope.CourseId, studentIDs, from, to)
		if period != grademodel.PeriodAnual {
			q = q.Where("grade_period = ?", period)
		}
		if err := q.Order("grade_date").Find(&grades).Error; err != nil {
			return nil, err
		}
	}

	var observations []observationmodel.ObservationModel
	if len(studentIDs) > 0 {
		if err := a.DB.
			Where("observation_course_id = ? AND observation_student_id IN ? AND observation_date BETWEEN ? AND ?",
				scope.CourseId, studentIDs, from, to).
			Order("observation_date").
			Find(&observations).Error; err != nil {
			return nil, err
		}
	}

	var classContent []classcontentmodel.ClassContentModel
	if err := a.DB.
		Where("class_content_course_id = ? AND class_content_date BETWEEN ? AND ?",
			scope.CourseId, from, to).
		Order("class_content_date").
		Find(&classContent).Error; err != nil {
		return nil, err
	}

	var meetings []meetingmodel.MeetingAttendanceModel
	q := a.DB.
		Where("meeting_attendance_course_id = ? AND meeting_attendance_date BETWEEN ? AND ?",
			scope.CourseId, from, to)
	if scope.Scope == ScopeSingleStudent && scope.StudentId != nil {
		q = q.Where("meeting_attendance_student_id = ?", *scope.StudentId)
	}
	if err := q.Order("meeting_attendance_date, meeting_attendance_number").
		Find(&meetings).Error; err != nil {
		return nil, err
	}

	// Group per student
	attByStudent := map[uuid.UUID][]attendancemodel.AttendanceModel{}
	for _, a := range attendance {
		attByStudent[a.AttendanceStudentId] = append(attByStudent[a.AttendanceStudentId], a)
	}
	gradesByStudent := map[uuid.UUID][]grademodel.GradeModel{}
	for _, g := range grades {
		gradesByStudent[g.GradeStudentId] = append(gradesByStudent[g.GradeStudentId], g)
	}
	obsByStudent := map[uuid.UUID][]observationmodel.ObservationModel{}
	for _, o := range observations {
		obsByStudent[o.ObservationStudentId] = append(obsByStudent[o.ObservationStudentId], o)
	}

	records := make([]StudentRecord, 0, len(students))
	for _, s := range students {
		records = append(records, StudentRecord{
			Student:      s,
			Attendance:   attByStudent[s.StudentId],
			Grades:       gradesByStudent[s.StudentId],
			Observations: obsByStudent[s.StudentId],
		})
	}

	teacherName := ""
	var teacher usermodel.UserModel
	if err := a.DB.First(&teacher, "id = ?", course.CourseTeacherId).Error; err == nil {
		teacherName = teacher.FullName
	}

	verifyURL := ""
	if configs.SchoolWebsite != "" {
		verifyURL = fmt.Sprintf("%s/verificar/libro-clases/%s?anio=%d",
			configs.SchoolWebsite, course.CourseId, course.CourseAcademicYear)
	}

	return &LibroClasesData{
		Institution: InstitutionInfo{
			Name:    configs.SchoolName,
			RBD:     configs.SchoolRBD,
			Phone:   configs.SchoolPhone,
			Email:   configs.SchoolEmail,
			Address: configs.SchoolAddress,
			Website: configs.SchoolWebsite,
		},
		Course:       course,
		TeacherName:  teacherName,
		AcademicYear: course.CourseAcademicYear,
		Scope:        scope.Scope,
		Period:       period,
		Students:     records,
		ClassContent: classContent,
		Meetings:     meetings,
		GeneratedAt:  time.Now(),
		GeneratedBy:  generatedBy,
		VerifyURL:    verifyURL,
	}, nil
}
