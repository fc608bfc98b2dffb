package user

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/internal/controller"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/service"
)

// maxImageBytes bounds uploaded capture size (8 MiB).
const maxImageBytes = 8 << 20

type RecognitionController struct {
	recognitionService service.RecognitionService
	signService        service.SignService
}

func NewRecognitionController(rs service.RecognitionService, ss service.SignService) *RecognitionController {
	return &RecognitionController{recognitionService: rs, signService: ss}
}

// Recognize godoc
// @Summary Recognize a captured gesture image
// @Description Routes the image to the recognizer endpoint for the given language and returns its prediction.
// @Tags Recognition
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Captured gesture image"
// @Param language formData string true "Target language (ASL or MSL)"
// @Success 200 {object} dto.RecognitionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid image/language"
// @Failure 502 {object} dto.ErrorResponse "Recognizer rejected the request"
// @Failure 503 {object} dto.ErrorResponse "Recognizer unreachable"
// @Router /recognize [post]
func (c *RecognitionController) Recognize(ctx *gin.Context) {
	language := model.Language(ctx.PostForm("language"))

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing image file", Code: "validation"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "image too large", Code: "validation"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("Recognize: failed to open uploaded image")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		log.Error().Err(err).Msg("Recognize: failed to read uploaded image")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read image"})
		return
	}

	result, err := c.recognitionService.Recognize(ctx.Request.Context(), image, language)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SearchSign godoc
// @Summary Look up the reference sign for a word
// @Tags Recognition
// @Produce json
// @Param word query string true "Word to look up"
// @Param language query string true "Target language (ASL or MSL)"
// @Success 200 {object} dto.SignResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Word not found"
// @Router /signs/search [get]
func (c *RecognitionController) SearchSign(ctx *gin.Context) {
	word := ctx.Query("word")
	language := model.Language(ctx.Query("language"))

	result, err := c.signService.Lookup(ctx.Request.Context(), word, language)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
