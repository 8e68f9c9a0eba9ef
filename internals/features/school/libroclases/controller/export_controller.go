package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"miescuela_backend/internals/features/school/libroclases/service"
	helper "miescuela_backend/internals/helpers"
)

type ExportController struct {
	Aggregator *service.Aggregator
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{Aggregator: service.NewAggregator(db)}
}

var validScopes = map[string]bool{
	service.ScopeFullYear:      true,
	service.ScopeSemester:      true,
	service.ScopeSingleStudent: true,
	service.ScopeSingleCourse:  true,
}

// GET /api/t/libro-clases/export?course_id=&scope=&period=&student_id=
// Streams the rendered book as application/pdf.
func (ctrl *ExportController) ExportLibroClases(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
	}

	scope := strings.ToUpper(strings.TrimSpace(c.Query("scope", service.ScopeFullYear)))
	if !validScopes[scope] {
		return helper.Error(c, fiber.StatusBadRequest, "scope inválido")
	}

	exportScope := service.ExportScope{
		Scope:    scope,
		CourseId: courseID,
		Period:   strings.ToUpper(strings.TrimSpace(c.Query("period"))),
	}
	if raw := c.Query("student_id"); raw != "" {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id inválido")
		}
		exportScope.StudentId = &sid
	}
	if scope == service.ScopeSingleStudent && exportScope.StudentId == nil {
		return helper.Error(c, fiber.StatusBadRequest, "student_id es obligatorio para este alcance")
	}

	data, err := ctrl.Aggregator.Collect(exportScope, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	}

	// Detached from the request context: the render outlives the 5s
	// request guard and is bounded by its own timeout instead.
	pdf, err := service.GenerateLibroClasesPDF(context.Background(), data)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el PDF")
	}

	filename := fmt.Sprintf("libro-clases_%s_%d_%s.pdf",
		sanitizeFilename(data.Course.CourseName), data.AcademicYear,
		time.Now().Format("20060102"))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

func sanitizeFilename(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "curso"
	}
	return b.String()
}
