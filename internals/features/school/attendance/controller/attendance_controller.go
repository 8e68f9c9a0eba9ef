package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"miescuela_backend/internals/features/school/attendance/dto"
	"miescuela_backend/internals/features/school/attendance/model"
	helper "miescuela_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

/* ===================== BULK RECORD ===================== */
// POST /api/t/attendance/bulk
// One batch per course day. Upserts on (course, student, date) so a day can
// be corrected by re-submitting it.
func (ctrl *AttendanceController) BulkRecordAttendance(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkRecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows := req.ToModels(teacherID)

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	err = tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_course_id"},
			{Name: "attendance_student_id"},
			{Name: "attendance_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status", "attendance_comment", "attendance_registered_by",
		}),
	}).Create(&rows).Error
	if err != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar la asistencia")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewAttendanceResponse(r))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asistencia registrada", out)
}

/* ===================== READ ===================== */
// GET /api/u/attendance?course_id=&student_id=&from=&to=
func (ctrl *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	var req dto.FilterAttendanceRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Filtros inválidos")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.CourseId == nil && req.StudentId == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Debe indicar course_id o student_id")
	}

	paging := helper.ResolvePaging(c, 100, 1000)

	q := ctrl.DB.Model(&model.AttendanceModel{})
	if req.CourseId != nil {
		q = q.Where("attendance_course_id = ?", *req.CourseId)
	}
	if req.StudentId != nil {
		q = q.Where("attendance_student_id = ?", *req.StudentId)
	}
	if req.From != nil {
		q = q.Where("attendance_date >= ?", *req.From)
	}
	if req.To != nil {
		q = q.Where("attendance_date <= ?", *req.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendance_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewAttendanceResponse(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"attendance": out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}
