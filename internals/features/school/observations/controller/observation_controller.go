package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"miescuela_backend/internals/features/school/observations/dto"
	"miescuela_backend/internals/features/school/observations/model"
	helper "miescuela_backend/internals/helpers"
)

type ObservationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewObservationController(db *gorm.DB) *ObservationController {
	return &ObservationController{DB: db, Validate: validator.New()}
}

// POST /api/t/observations
func (ctrl *ObservationController) CreateObservation(c *fiber.Ctx) error {
	authorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateObservationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel(authorID)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar la observación")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Observación registrada", dto.NewObservationResponse(mdl))
}

// GET /api/u/observations?student_id=&course_id=
func (ctrl *ObservationController) GetObservations(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ObservationModel{})

	hasFilter := false
	if s := c.Query("student_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id inválido")
		}
		q = q.Where("observation_student_id = ?", id)
		hasFilter = true
	}
	if s := c.Query("course_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
		}
		q = q.Where("observation_course_id = ?", id)
		hasFilter = true
	}
	if !hasFilter {
		return helper.Error(c, fiber.StatusBadRequest, "Debe indicar student_id o course_id")
	}

	var rows []model.ObservationModel
	if err := q.Order("observation_date DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.ObservationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewObservationResponse(r))
	}
	return helper.Success(c, "OK", out)
}
