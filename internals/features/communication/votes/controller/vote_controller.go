package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"miescuela_backend/internals/features/communication/votes/dto"
	"miescuela_backend/internals/features/communication/votes/model"
	helper "miescuela_backend/internals/helpers"
)

type VoteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVoteController(db *gorm.DB) *VoteController {
	return &VoteController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */

// POST /api/a/votes
func (ctrl *VoteController) CreateVote(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.VoteClosesAt.After(time.Now()) {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Datos inválidos", map[string]string{
			"vote_closes_at": "La fecha de cierre debe ser futura",
		})
	}

	mdl, err := req.ToModel(adminID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Opciones inválidas")
	}
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la votación")
	}

	resp, err := dto.NewVoteResponse(mdl, time.Now())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Votación creada", resp)
}

/* ===================== READ ===================== */

// GET /api/u/votes?course_id=&open=true
func (ctrl *VoteController) GetVotes(c *fiber.Ctx) error {
	now := time.Now()

	q := ctrl.DB.Model(&model.VoteModel{})
	if raw := c.Query("course_id"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
		}
		q = q.Where("vote_course_id IS NULL OR vote_course_id = ?", courseID)
	}
	if strings.EqualFold(c.Query("open"), "true") {
		q = q.Where("vote_closes_at > ?", now)
	}

	var rows []model.VoteModel
	if err := q.Order("vote_closes_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	out := make([]dto.VoteResponse, 0, len(rows))
	for _, r := range rows {
		resp, err := dto.NewVoteResponse(r, now)
		if err != nil {
			continue
		}
		out = append(out, resp)
	}
	return helper.Success(c, "OK", out)
}

/* ===================== BALLOT ===================== */

// POST /api/p/votes/:id/ballot
// One ballot per parent per vote; the unique index is the arbiter.
func (ctrl *VoteController) CastBallot(c *fiber.Ctx) error {
	parentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	voteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.CastBallotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var vote model.VoteModel
	if err := ctrl.DB.First(&vote, "vote_id = ?", voteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Votación no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !vote.IsOpen(time.Now()) {
		return helper.Error(c, fiber.StatusConflict, "La votación está cerrada")
	}

	opts, err := dto.DecodeOptions(vote)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if *req.BallotOptionIndex >= len(opts) {
		return helper.Error(c, fiber.StatusBadRequest, "Opción inexistente")
	}

	ballot := model.BallotModel{
		BallotVoteId:      voteID,
		BallotParentId:    parentID,
		BallotOptionIndex: *req.BallotOptionIndex,
	}
	if err := ctrl.DB.Create(&ballot).Error; err != nil {
		if strings.Contains(err.Error(), "idx_ballot_vote_parent") ||
			strings.Contains(err.Error(), "duplicate key") {
			return helper.Error(c, fiber.StatusConflict, "Ya emitiste tu voto en esta votación")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar el voto")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Voto registrado", fiber.Map{
		"ballot_id":           ballot.BallotId,
		"ballot_option_index": ballot.BallotOptionIndex,
		"ballot_option_label": opts[ballot.BallotOptionIndex],
	})
}

/* ===================== RESULTS ===================== */

// GET /api/u/votes/:id/results
func (ctrl *VoteController) GetVoteResults(c *fiber.Ctx) error {
	voteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var vote model.VoteModel
	if err := ctrl.DB.First(&vote, "vote_id = ?", voteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Votación no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	now := time.Now()
	voteResp, err := dto.NewVoteResponse(vote, now)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	type countRow struct {
		OptionIndex int   `gorm:"column:ballot_option_index"`
		Ballots     int64 `gorm:"column:ballots"`
	}
	var counts []countRow
	if err := ctrl.DB.Model(&model.BallotModel{}).
		Select("ballot_option_index, COUNT(*) AS ballots").
		Where("ballot_vote_id = ?", voteID).
		Group("ballot_option_index").
		Scan(&counts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	byIndex := map[int]int64{}
	var total int64
	for _, r := range counts {
		byIndex[r.OptionIndex] = r.Ballots
		total += r.Ballots
	}

	tally := make([]dto.VoteOptionTally, 0, len(voteResp.VoteOptions))
	for i, label := range voteResp.VoteOptions {
		tally = append(tally, dto.VoteOptionTally{
			OptionIndex: i,
			OptionLabel: label,
			Ballots:     byIndex[i],
		})
	}

	return helper.Success(c, "OK", dto.VoteResultsResponse{
		Vote:         voteResp,
		TotalBallots: total,
		Tally:        tally,
	})
}
