package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/internal/controller"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/service"
)

// ModerationController exposes the review queue. The service layer is
// the authority on the reviewer's role; these handlers only carry the
// actor identity through.
type ModerationController struct {
	moderationService service.ModerationService
}

func NewModerationController(ms service.ModerationService) *ModerationController {
	return &ModerationController{moderationService: ms}
}

// Approve godoc
// @Summary (Admin) Approve a pending contribution
// @Tags Admin - Moderation
// @Produce json
// @Param id path int true "Contribution ID"
// @Success 200 {object} dto.ContributionResponse
// @Failure 403 {object} dto.ErrorResponse "Caller lacks the reviewer role"
// @Failure 404 {object} dto.ErrorResponse "Contribution not found"
// @Failure 409 {object} dto.ErrorResponse "Contribution already decided"
// @Router /admin/contributions/{id}/approve [post]
func (c *ModerationController) Approve(ctx *gin.Context) {
	reviewerID, ok := controller.ActorID(ctx)
	if !ok {
		return
	}
	contributionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	updated, err := c.moderationService.Approve(ctx.Request.Context(), contributionID, reviewerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Uint("contributionID", contributionID).Uint("reviewerID", reviewerID).Msg("Contribution approved")
	ctx.JSON(http.StatusOK, updated)
}

// Reject godoc
// @Summary (Admin) Reject a pending contribution with a reason
// @Tags Admin - Moderation
// @Accept json
// @Produce json
// @Param id path int true "Contribution ID"
// @Param rejection body dto.RejectContributionRequest true "Rejection reason"
// @Success 200 {object} dto.ContributionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing rejection reason"
// @Failure 403 {object} dto.ErrorResponse "Caller lacks the reviewer role"
// @Failure 404 {object} dto.ErrorResponse "Contribution not found"
// @Failure 409 {object} dto.ErrorResponse "Contribution already decided"
// @Router /admin/contributions/{id}/reject [post]
func (c *ModerationController) Reject(ctx *gin.Context) {
	reviewerID, ok := controller.ActorID(ctx)
	if !ok {
		return
	}
	contributionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RejectContributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "rejection reason is required", Code: "validation"})
		return
	}

	updated, err := c.moderationService.Reject(ctx.Request.Context(), contributionID, reviewerID, req.Reason)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Uint("contributionID", contributionID).Uint("reviewerID", reviewerID).Msg("Contribution rejected")
	ctx.JSON(http.StatusOK, updated)
}

// List godoc
// @Summary (Admin) List contributions across all submitters
// @Tags Admin - Moderation
// @Produce json
// @Param status query string false "pending|approved|rejected|all"
// @Param language query string false "ASL|MSL|all"
// @Param submitted_by query int false "Filter by submitter"
// @Success 200 {array} dto.ContributionResponse
// @Router /admin/contributions [get]
func (c *ModerationController) List(ctx *gin.Context) {
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

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name, Code: "validation"})
		return 0, false
	}
	return uint(val), true
}
