package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "miescuela_backend/internals/features/users/auth/controller"
	"miescuela_backend/internals/middlewares"
	authmw "miescuela_backend/internals/middlewares/auth"
)

// AuthRoutes registers the public auth endpoints plus the authenticated /me.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	grp.Post("/refresh", ctrl.Refresh)
	grp.Post("/logout", authmw.AuthMiddleware(db), ctrl.Logout)
}

// MeRoutes registers identity lookups under an already-authenticated group.
func MeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authcontroller.NewAuthController(db)
	r.Get("/me", ctrl.Me)
}
