package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementcontroller "miescuela_backend/internals/features/communication/announcements/controller"
)

func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := announcementcontroller.NewAnnouncementController(db)

	r.Post("/announcements", ctrl.CreateAnnouncement)
	r.Put("/announcements/:id", ctrl.UpdateAnnouncement)
	r.Delete("/announcements/:id", ctrl.DeleteAnnouncement)
}

func AnnouncementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := announcementcontroller.NewAnnouncementController(db)

	r.Get("/announcements", ctrl.GetAnnouncements)
}
