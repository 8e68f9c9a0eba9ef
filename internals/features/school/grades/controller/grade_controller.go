package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"miescuela_backend/internals/features/school/grades/dto"
	"miescuela_backend/internals/features/school/grades/model"
	helper "miescuela_backend/internals/helpers"
)

type GradeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/t/grades
// Validation failure returns field-level messages and writes nothing.
func (ctrl *GradeController) CreateGrade(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel(teacherID)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar la calificación")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Calificación registrada", dto.NewGradeResponse(mdl))
}

/* ===================== READ ===================== */
// GET /api/u/grades?student_id=&course_id=&subject=&period=
func (ctrl *GradeController) GetGrades(c *fiber.Ctx) error {
	var req dto.FilterGradesRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Filtros inválidos")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&model.GradeModel{})
	if req.StudentId != nil {
		q = q.Where("grade_student_id = ?", *req.StudentId)
	}
	if req.CourseId != nil {
		q = q.Where("grade_course_id = ?", *req.CourseId)
	}
	if req.Subject != nil {
		q = q.Where("grade_subject = ?", *req.Subject)
	}
	if req.Period != nil {
		q = q.Where("grade_period = ?", *req.Period)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var rows []model.GradeModel
	if err := q.Order("grade_date DESC, grade_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.GradeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewGradeResponse(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"grades":     out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

/* ===================== SUMMARY ===================== */
// GET /api/u/grades/summary?student_id=&course_id=
// Per-subject average plus overall average and pass state, for the
// student dashboard cards.
func (ctrl *GradeController) GetStudentSummary(c *fiber.Ctx) error {
	var req dto.FilterGradesRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Filtros inválidos")
	}
	if req.StudentId == nil || req.CourseId == nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id y course_id son obligatorios")
	}

	type subjectAvg struct {
		Subject string  `gorm:"column:grade_subject" json:"subject"`
		Average float64 `gorm:"column:average" json:"average"`
		Count   int     `gorm:"column:count" json:"count"`
	}
	var perSubject []subjectAvg
	err := ctrl.DB.Model(&model.GradeModel{}).
		Select("grade_subject, ROUND(AVG(grade_value)::numeric, 1) AS average, COUNT(*) AS count").
		Where("grade_student_id = ? AND grade_course_id = ?", *req.StudentId, *req.CourseId).
		Group("grade_subject").
		Order("grade_subject").
		Scan(&perSubject).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var overall float64
	if len(perSubject) > 0 {
		for _, s := range perSubject {
			overall += s.Average
		}
		overall /= float64(len(perSubject))
	}

	return helper.Success(c, "OK", fiber.Map{
		"subjects":        perSubject,
		"overall_average": overall,
		"overall_status":  model.StatusLabel(overall),
		"passing":         model.IsPassing(overall),
	})
}
