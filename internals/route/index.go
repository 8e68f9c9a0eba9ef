package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"miescuela_backend/internals/constants"
	announcementroute "miescuela_backend/internals/features/communication/announcements/route"
	voteroute "miescuela_backend/internals/features/communication/votes/route"
	attendanceroute "miescuela_backend/internals/features/school/attendance/route"
	classcontentroute "miescuela_backend/internals/features/school/classcontent/route"
	courseroute "miescuela_backend/internals/features/school/courses/route"
	graderoute "miescuela_backend/internals/features/school/grades/route"
	libroroute "miescuela_backend/internals/features/school/libroclases/route"
	meetingroute "miescuela_backend/internals/features/school/meetings/route"
	observationroute "miescuela_backend/internals/features/school/observations/route"
	configroute "miescuela_backend/internals/features/system/config/route"
	authroute "miescuela_backend/internals/features/users/auth/route"
	authmw "miescuela_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature group.
//
//	/api/auth  public auth endpoints
//	/api/u     any authenticated user
//	/api/t     teacher and above
//	/api/a     admin and above
//	/api/p     parents only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authroute.AuthRoutes(app, db)

	api := app.Group("/api", authmw.AuthMiddleware(db))

	user := api.Group("/u")
	authroute.MeRoutes(user, db)
	configroute.ConfigUserRoutes(user)
	courseroute.CourseUserRoutes(user, db)
	graderoute.GradeUserRoutes(user, db)
	attendanceroute.AttendanceUserRoutes(user, db)
	observationroute.ObservationUserRoutes(user, db)
	classcontentroute.ClassContentUserRoutes(user, db)
	announcementroute.AnnouncementUserRoutes(user, db)
	voteroute.VoteUserRoutes(user, db)

	teacher := api.Group("/t", authmw.OnlyRoles(
		constants.RoleErrorTeacher("esta sección"), constants.TeacherAndAbove...))
	graderoute.GradeTeacherRoutes(teacher, db)
	attendanceroute.AttendanceTeacherRoutes(teacher, db)
	meetingroute.MeetingTeacherRoutes(teacher, db)
	observationroute.ObservationTeacherRoutes(teacher, db)
	classcontentroute.ClassContentTeacherRoutes(teacher, db)
	libroroute.LibroClasesTeacherRoutes(teacher, db)

	admin := api.Group("/a", authmw.OnlyRoles(
		constants.RoleErrorAdmin("esta sección"), constants.AdminAndAbove...))
	courseroute.CourseAdminRoutes(admin, db)
	announcementroute.AnnouncementAdminRoutes(admin, db)
	voteroute.VoteAdminRoutes(admin, db)

	parent := api.Group("/p", authmw.OnlyRoles(
		constants.RoleErrorParent("esta sección"), constants.ParentOnly...))
	meetingroute.MeetingParentRoutes(parent, db)
	voteroute.VoteParentRoutes(parent, db)
}
