package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"miescuela_backend/internals/features/school/courses/dto"
	"miescuela_backend/internals/features/school/courses/model"
	helper "miescuela_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/a/courses
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el curso")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Curso creado", dto.NewCourseResponse(mdl))
}

/* ===================== UPDATE ===================== */
// PUT /api/a/courses/:id
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de curso inválido")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var mdl model.CourseModel
	if err := ctrl.DB.First(&mdl, "course_id = ?", courseID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	updates := map[string]interface{}{}
	if req.CourseName != nil {
		updates["course_name"] = *req.CourseName
	}
	if req.CourseSection != nil {
		updates["course_section"] = *req.CourseSection
	}
	if req.CourseSubjects != nil {
		updates["course_subjects"] = *req.CourseSubjects
	}
	if req.CourseMaxStudents != nil {
		updates["course_max_students"] = *req.CourseMaxStudents
	}
	if req.CourseTeacherId != nil {
		updates["course_teacher_id"] = *req.CourseTeacherId
	}
	if req.CourseIsActive != nil {
		updates["course_is_active"] = *req.CourseIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	if err := ctrl.DB.Model(&mdl).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el curso")
	}

	return helper.Success(c, "Curso actualizado", dto.NewCourseResponse(mdl))
}

/* ===================== DELETE ===================== */
// DELETE /api/a/courses/:id (soft)
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de curso inválido")
	}
	res := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", courseID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el curso")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Curso no encontrado")
	}
	return helper.Success(c, "Curso eliminado", nil)
}

/* ===================== READ ===================== */
// GET /api/u/courses
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.CourseModel{})
	if year := c.QueryInt("academic_year"); year > 0 {
		q = q.Where("course_academic_year = ?", year)
	}
	if teacher := c.Query("teacher_id"); teacher != "" {
		if tid, err := uuid.Parse(teacher); err == nil {
			q = q.Where("course_teacher_id = ?", tid)
		}
	}
	if c.Query("only_active", "true") == "true" {
		q = q.Where("course_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var rows []model.CourseModel
	if err := q.Order("course_grade, course_section").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.CourseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewCourseResponse(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"courses":    out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

// GET /api/u/courses/:id (includes enrolled students)
func (ctrl *CourseController) GetCourseById(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de curso inválido")
	}

	var mdl model.CourseModel
	err = ctrl.DB.
		Preload("Students", func(db *gorm.DB) *gorm.DB {
			return db.Order("student_full_name")
		}).
		First(&mdl, "course_id = ?", courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Curso no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	return helper.Success(c, "OK", dto.NewCourseResponse(mdl))
}

/* ===================== STUDENTS & ENROLLMENT ===================== */
// POST /api/a/students
func (ctrl *CourseController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "RUN ya registrado")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Estudiante registrado", dto.NewStudentResponse(mdl))
}

// POST /api/a/courses/:id/enroll
func (ctrl *CourseController) EnrollStudent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de curso inválido")
	}

	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ? AND course_is_active = TRUE", courseID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Curso no encontrado o inactivo")
	}

	var enrolled int64
	if err := ctrl.DB.Model(&model.CourseEnrollment{}).
		Where("enrollment_course_id = ?", courseID).
		Count(&enrolled).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if int(enrolled) >= course.CourseMaxStudents {
		return helper.Error(c, fiber.StatusConflict, "El curso alcanzó su capacidad máxima")
	}

	enrollment := model.CourseEnrollment{
		EnrollmentCourseId:  courseID,
		EnrollmentStudentId: req.StudentId,
	}
	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "El estudiante ya está matriculado en este curso")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Estudiante matriculado", enrollment)
}
