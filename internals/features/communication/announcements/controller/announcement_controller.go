package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"miescuela_backend/internals/constants"
	"miescuela_backend/internals/features/communication/announcements/dto"
	"miescuela_backend/internals/features/communication/announcements/model"
	helper "miescuela_backend/internals/helpers"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */

// POST /api/a/announcements
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.AnnouncementAudience == model.AudienceCourse && req.AnnouncementCourseId == nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Datos incompletos", map[string]string{
			"announcement_course_id": "Obligatorio cuando la audiencia es COURSE",
		})
	}

	mdl := req.ToModel(adminID)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el comunicado")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Comunicado publicado", dto.NewAnnouncementResponse(mdl))
}

/* ===================== UPDATE ===================== */

// PUT /api/a/announcements/:id
func (ctrl *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.AnnouncementTitle != nil {
		updates["announcement_title"] = strings.TrimSpace(*req.AnnouncementTitle)
	}
	if req.AnnouncementBody != nil {
		updates["announcement_body"] = *req.AnnouncementBody
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	var mdl model.AnnouncementModel
	if err := ctrl.DB.First(&mdl, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Comunicado no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if err := ctrl.DB.Model(&mdl).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el comunicado")
	}

	return helper.Success(c, "Comunicado actualizado", dto.NewAnnouncementResponse(mdl))
}

/* ===================== DELETE ===================== */

// DELETE /api/a/announcements/:id
func (ctrl *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Delete(&model.AnnouncementModel{}, "announcement_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el comunicado")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Comunicado no encontrado")
	}

	return helper.Success(c, "Comunicado eliminado", nil)
}

/* ===================== READ ===================== */

// GET /api/u/announcements?course_id=
// The feed is audience-filtered by the caller's role.
func (ctrl *AnnouncementController) GetAnnouncements(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	audiences := []string{model.AudienceAll}
	switch role {
	case constants.RoleTeacher, constants.RoleAdmin, constants.RoleMaster:
		audiences = append(audiences, model.AudienceTeachers)
	case constants.RoleParent:
		audiences = append(audiences, model.AudienceParents)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AnnouncementModel{})
	if raw := c.Query("course_id"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
		}
		q = q.Where("announcement_audience IN ? OR (announcement_audience = ? AND announcement_course_id = ?)",
			audiences, model.AudienceCourse, courseID)
	} else {
		q = q.Where("announcement_audience IN ?", audiences)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	var rows []model.AnnouncementModel
	if err := q.
		Order("announcement_published_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.AnnouncementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewAnnouncementResponse(r))
	}

	return helper.Success(c, "OK", fiber.Map{
		"announcements": out,
		"pagination":    helper.BuildPagination(paging, total, len(out)),
	})
}
