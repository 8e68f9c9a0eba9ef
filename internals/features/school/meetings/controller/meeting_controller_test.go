package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds a gorm handle that assembles SQL without touching a
// database, recording every query it would have run.
func newDryRunDB(t *testing.T, captured *[]string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	err = db.Callback().Query().After("gorm:query").Register("test_capture_sql", func(tx *gorm.DB) {
		*captured = append(*captured, tx.Statement.SQL.String())
	})
	require.NoError(t, err)
	return db
}

func parentHistoryApp(db *gorm.DB, parentID uuid.UUID) *fiber.App {
	ctrl := NewMeetingController(db)
	app := fiber.New()
	app.Get("/meetings/history", func(c *fiber.Ctx) error {
		c.Locals("user_id", parentID)
		return ctrl.GetMyMeetingAttendance(c)
	})
	return app
}

func TestGetMyMeetingAttendanceScopedToCaller(t *testing.T) {
	var captured []string
	parentID := uuid.New()
	app := parentHistoryApp(newDryRunDB(t, &captured), parentID)

	resp, err := app.Test(httptest.NewRequest("GET", "/meetings/history", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotEmpty(t, captured)
	assert.Contains(t, captured[0], "meeting_attendance_parent_id")
}

func TestGetMyMeetingAttendanceKeepsCallerFilterWithCourseId(t *testing.T) {
	var captured []string
	parentID := uuid.New()
	app := parentHistoryApp(newDryRunDB(t, &captured), parentID)

	req := httptest.NewRequest("GET", "/meetings/history?course_id="+uuid.New().String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A caller-supplied course_id narrows the caller's own rows; it never
	// replaces the caller filter.
	require.NotEmpty(t, captured)
	assert.Contains(t, captured[0], "meeting_attendance_parent_id")
	assert.Contains(t, captured[0], "meeting_attendance_course_id")
}

func TestGetMyMeetingAttendanceRejectsBadCourseId(t *testing.T) {
	var captured []string
	app := parentHistoryApp(newDryRunDB(t, &captured), uuid.New())

	req := httptest.NewRequest("GET", "/meetings/history?course_id=no-es-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, captured)
}
