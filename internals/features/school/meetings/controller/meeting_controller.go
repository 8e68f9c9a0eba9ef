package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"miescuela_backend/internals/features/school/meetings/dto"
	"miescuela_backend/internals/features/school/meetings/model"
	helper "miescuela_backend/internals/helpers"
)

type MeetingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMeetingController(db *gorm.DB) *MeetingController {
	return &MeetingController{DB: db, Validate: validator.New()}
}

/* ===================== BULK RECORD ===================== */
// POST /api/t/meetings/bulk
// Saves one apoderado meeting session as a single batch: one row per
// student, upserted on (course, student, date, number).
func (ctrl *MeetingController) BulkRecordMeetingAttendance(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkRecordMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if errs := req.Validate(); errs != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validación fallida", errs)
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
			{Name: "meeting_attendance_course_id"},
			{Name: "meeting_attendance_student_id"},
			{Name: "meeting_attendance_date"},
			{Name: "meeting_attendance_number"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"meeting_attendance_attended",
			"meeting_attendance_representative_name",
			"meeting_attendance_relationship",
			"meeting_attendance_observations",
			"meeting_attendance_agreements",
			"meeting_attendance_registered_by",
		}),
	}).Create(&rows).Error
	if err != nil {
		tx.Rollback()
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar la reunión")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.MeetingAttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewMeetingAttendanceResponse(r))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Reunión registrada", out)
}

/* ===================== HISTORY ===================== */
// GET /api/t/meetings/history?course_id=&limit=
// Prior sessions, most recent first, capped (default 10).
func (ctrl *MeetingController) GetCourseMeetingAttendance(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var summaries []dto.MeetingSummary
	err = ctrl.DB.Model(&model.MeetingAttendanceModel{}).
		Select(`meeting_attendance_date, meeting_attendance_number,
			COUNT(*) AS total_students,
			COUNT(*) FILTER (WHERE meeting_attendance_attended) AS attended_count`).
		Where("meeting_attendance_course_id = ?", courseID).
		Group("meeting_attendance_date, meeting_attendance_number").
		Order("meeting_attendance_date DESC, meeting_attendance_number DESC").
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	return helper.Success(c, "OK", summaries)
}

// GET /api/t/meetings/detail?course_id=&date=&number=
func (ctrl *MeetingController) GetMeetingDetail(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
	}
	number := c.QueryInt("number")
	date := c.Query("date")
	if date == "" || number < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "date y number son obligatorios")
	}

	var rows []model.MeetingAttendanceModel
	err = ctrl.DB.
		Where("meeting_attendance_course_id = ? AND meeting_attendance_date = ? AND meeting_attendance_number = ?",
			courseID, date, number).
		Order("meeting_attendance_created_at").
		Find(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.MeetingAttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewMeetingAttendanceResponse(r))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/p/meetings/history?course_id=&limit=
// Apoderado-facing history: only the caller's own rows, never the whole
// course. course_id narrows further when given.
func (ctrl *MeetingController) GetMyMeetingAttendance(c *fiber.Ctx) error {
	parentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	q := ctrl.DB.Where("meeting_attendance_parent_id = ?", parentID)
	if raw := c.Query("course_id"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
		}
		q = q.Where("meeting_attendance_course_id = ?", courseID)
	}

	var rows []model.MeetingAttendanceModel
	err = q.
		Order("meeting_attendance_date DESC, meeting_attendance_number DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.MeetingAttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewMeetingAttendanceResponse(r))
	}
	return helper.Success(c, "OK", out)
}

/* ===================== STATISTICS ===================== */
// GET /api/t/meetings/statistics?course_id=
// Total sessions held and average attendance percentage across them.
func (ctrl *MeetingController) GetMeetingStatistics(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
	}

	type statsRow struct {
		TotalMeetings     int     `gorm:"column:total_meetings"`
		AverageAttendance float64 `gorm:"column:average_attendance"`
	}
	var row statsRow
	err = ctrl.DB.Raw(`
		SELECT
			COUNT(*) AS total_meetings,
			COALESCE(ROUND(AVG(pct)::numeric, 1), 0) AS average_attendance
		FROM (
			SELECT
				meeting_attendance_date,
				meeting_attendance_number,
				100.0 * COUNT(*) FILTER (WHERE meeting_attendance_attended) / COUNT(*) AS pct
			FROM meeting_attendances
			WHERE meeting_attendance_course_id = ?
			  AND meeting_attendance_deleted_at IS NULL
			GROUP BY meeting_attendance_date, meeting_attendance_number
		) sessions`, courseID).
		Scan(&row).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	return helper.Success(c, "OK", dto.MeetingStatistics{
		TotalMeetings:     row.TotalMeetings,
		AverageAttendance: row.AverageAttendance,
	})
}
