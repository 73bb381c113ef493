package feedback

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockmate/internal/controller"
	"github.com/lshigami/mockmate/internal/dto"
	"github.com/lshigami/mockmate/internal/service"
	"github.com/rs/zerolog/log"
)

type FeedbackController struct {
	feedbackService service.FeedbackService
}

func NewFeedbackController(fs service.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: fs}
}

func (c *FeedbackController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", c.SubmitFeedback)
	rg.GET("/feedback/:interviewId", c.GetFeedback)
}

// SubmitFeedback godoc
// @Summary Grade an answer
// @Description Sends the answer to Gemini for feedback and a 0-10 rating, then stores it. Retrying a question appends a new record.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Question and user answer"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate feedback"
// @Failure 502 {object} dto.ModelOutputErrorResponse "AI response could not be parsed"
// @Failure 504 {object} dto.ErrorResponse "AI service timed out"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitFeedback: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: controller.MsgMissingFields})
		return
	}

	resp, err := c.feedbackService.Grade(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to generate feedback")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetFeedback godoc
// @Summary Get feedback for an interview
// @Description All graded answers in submission order, with a score summary.
// @Tags Feedback
// @Produce json
// @Param interviewId path string true "Mock interview ID"
// @Success 200 {object} dto.FeedbackListResponse
// @Failure 400 {object} dto.ErrorResponse "Missing interviewId"
// @Failure 404 {object} dto.MessageResponse "No feedback found for this interview"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch feedback"
// @Router /feedback/{interviewId} [get]
func (c *FeedbackController) GetFeedback(ctx *gin.Context) {
	interviewID := strings.TrimSpace(ctx.Param("interviewId"))
	if interviewID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing interviewId"})
		return
	}

	resp, err := c.feedbackService.ListForInterview(ctx.Request.Context(), interviewID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch feedback")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
