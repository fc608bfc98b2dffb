package user

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/signlearn/signbridge/internal/controller"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/service"
)

type ChallengeController struct {
	challengeService service.ChallengeService
}

func NewChallengeController(cs service.ChallengeService) *ChallengeController {
	return &ChallengeController{challengeService: cs}
}

// TodayChallenge godoc
// @Summary Get today's daily challenge
// @Description Deterministic selection: every caller on the same UTC day sees the same challenge for a language.
// @Tags Challenges
// @Produce json
// @Param language query string true "Target language (ASL or MSL)"
// @Success 200 {object} dto.ChallengeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid language"
// @Failure 404 {object} dto.ErrorResponse "No active challenges for language"
// @Router /challenges/today [get]
func (c *ChallengeController) TodayChallenge(ctx *gin.Context) {
	language := model.Language(ctx.Query("language"))

	challenge, err := c.challengeService.TodayChallenge(ctx.Request.Context(), language, time.Now().UTC())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, challenge)
}
