package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/internal/controller"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/service"
)

type ContributionController struct {
	moderationService service.ModerationService
}

func NewContributionController(ms service.ModerationService) *ContributionController {
	return &ContributionController{moderationService: ms}
}

// Submit godoc
// @Summary Submit a gesture or word contribution
// @Description Creates a new contribution in pending state awaiting moderation.
// @Tags Contributions
// @Accept json
// @Produce json
// @Param contribution body dto.SubmitContributionRequest true "Contribution content"
// @Success 201 {object} dto.ContributionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid contribution fields"
// @Router /contributions [post]
func (c *ContributionController) Submit(ctx *gin.Context) {
	actorID, ok := controller.ActorID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error(), Code: "validation"})
		return
	}

	created, err := c.moderationService.Submit(ctx.Request.Context(), actorID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Uint("contributionID", created.ID).Uint("submitterID", actorID).Msg("Contribution accepted for moderation")
	ctx.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List contributions
// @Description Non-admin callers always see only their own submissions, whatever filter they supply.
// @Tags Contributions
// @Produce json
// @Param status query string false "pending|approved|rejected|all"
// @Param language query string false "ASL|MSL|all"
// @Param submitted_by query int false "Filter by submitter (admin only)"
// @Success 200 {array} dto.ContributionResponse
// @Failure 400 {object} dto.ErrorResponse "Unrecognized filter value"
// @Router /contributions [get]
func (c *ContributionController) List(ctx *gin.Context) {
	actorID, ok := controller.ActorID(ctx)
	if !ok {
		return
	}

	var filter dto.ContributionFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid filter: " + err.Error(), Code: "validation"})
		return
	}

	contributions, err := c.moderationService.List(ctx.Request.Context(), actorID, filter)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, contributions)
}
