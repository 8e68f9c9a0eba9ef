package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"miescuela_backend/internals/features/school/classcontent/dto"
	"miescuela_backend/internals/features/school/classcontent/model"
	helper "miescuela_backend/internals/helpers"
)

type ClassContentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassContentController(db *gorm.DB) *ClassContentController {
	return &ClassContentController{DB: db, Validate: validator.New()}
}

// POST /api/t/class-contents
func (ctrl *ClassContentController) CreateClassContent(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel(teacherID)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el contenido")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Contenido registrado", dto.NewClassContentResponse(mdl))
}

// GET /api/u/class-contents?course_id=
func (ctrl *ClassContentController) GetClassContents(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
	}

	var rows []model.ClassContentModel
	if err := ctrl.DB.
		Where("class_content_course_id = ?", courseID).
		Order("class_content_date DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.ClassContentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewClassContentResponse(r))
	}
	return helper.Success(c, "OK", out)
}
