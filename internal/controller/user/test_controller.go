package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/signlearn/signbridge/internal/controller"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/service"
)

type TestController struct {
	scoringService service.ScoringService
}

func NewTestController(ss service.ScoringService) *TestController {
	return &TestController{scoringService: ss}
}

// GetTest godoc
// @Summary Get a proficiency test with its questions
// @Tags Proficiency
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}

	test, err := c.scoringService.GetTest(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// SubmitTest godoc
// @Summary Submit answers for a proficiency test
// @Description Scores the submission and stores the resulting proficiency level on the user.
// @Tags Proficiency
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param submission body dto.SubmitTestRequest true "Answer set"
// @Success 200 {object} dto.TestResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid submission"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/submissions [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	actorID, ok := controller.ActorID(ctx)
	if !ok {
		return
	}
	testID, ok := parseIDParam(ctx, "test_id")
	if !ok {
		return
	}

	var req dto.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error(), Code: "validation"})
		return
	}

	result, err := c.scoringService.SubmitTest(ctx.Request.Context(), actorID, testID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// TestPrompt godoc
// @Summary Should the one-time proficiency test prompt be shown
// @Tags Proficiency
// @Produce json
// @Success 200 {object} dto.TestPromptResponse
// @Router /test-prompt [get]
func (c *TestController) TestPrompt(ctx *gin.Context) {
	actorID, ok := controller.ActorID(ctx)
	if !ok {
		return
	}

	prompt, err := c.scoringService.TestPrompt(ctx.Request.Context(), actorID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, prompt)
}

// DismissTestPrompt godoc
// @Summary Dismiss the proficiency test prompt permanently
// @Tags Proficiency
// @Produce json
// @Success 204 "Prompt dismissed"
// @Router /test-prompt/dismiss [post]
func (c *TestController) DismissTestPrompt(ctx *gin.Context) {
	actorID, ok := controller.ActorID(ctx)
	if !ok {
		return
	}

	if err := c.scoringService.DismissTestPrompt(ctx.Request.Context(), actorID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name, Code: "validation"})
		return 0, false
	}
	return uint(val), true
}
