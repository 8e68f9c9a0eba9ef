package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	votecontroller "miescuela_backend/internals/features/communication/votes/controller"
)

func VoteAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := votecontroller.NewVoteController(db)

	r.Post("/votes", ctrl.CreateVote)
}

func VoteUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := votecontroller.NewVoteController(db)

	r.Get("/votes", ctrl.GetVotes)
	r.Get("/votes/:id/results", ctrl.GetVoteResults)
}

func VoteParentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := votecontroller.NewVoteController(db)

	r.Post("/votes/:id/ballot", ctrl.CastBallot)
}
