package interview

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockmate/internal/controller"
	"github.com/lshigami/mockmate/internal/dto"
	"github.com/lshigami/mockmate/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(is service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: is}
}

func (c *InterviewController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-interview", c.GenerateInterview)
	rg.GET("/interviews", c.ListInterviews)
	rg.GET("/interviews/:mockId", c.GetInterview)
	rg.GET("/interviews/:mockId/answered-questions", c.GetAnsweredQuestions)
}

// GenerateInterview godoc
// @Summary Generate a mock interview
// @Description Asks Gemini for interview questions with reference answers and stores them under a new mockId. The prompt is built from the job fields when omitted.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param request body dto.GenerateInterviewRequest true "Job details"
// @Success 200 {object} dto.GenerateInterviewResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate interview"
// @Failure 502 {object} dto.ModelOutputErrorResponse "AI response could not be parsed"
// @Failure 504 {object} dto.ErrorResponse "AI service timed out"
// @Router /generate-interview [post]
func (c *InterviewController) GenerateInterview(ctx *gin.Context) {
	var req dto.GenerateInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateInterview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: controller.MsgMissingFields})
		return
	}
	log.Debug().Str("stage", "received").Str("jobPosition", req.JobPosition).Msg("GenerateInterview request")

	resp, err := c.interviewService.Generate(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to generate interview")
		return
	}
	log.Debug().Str("stage", "responded").Str("mockId", resp.MockID).Msg("GenerateInterview done")
	ctx.JSON(http.StatusOK, resp)
}

// GetInterview godoc
// @Summary Get a mock interview
// @Description Returns the interview with its question list decoded.
// @Tags Interviews
// @Produce json
// @Param mockId path string true "Mock interview ID"
// @Success 200 {object} dto.InterviewDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Missing mockId"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch interview"
// @Router /interviews/{mockId} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	mockID := strings.TrimSpace(ctx.Param("mockId"))
	if mockID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing mockId"})
		return
	}

	interview, err := c.interviewService.GetByMockID(ctx.Request.Context(), mockID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch interview")
		return
	}
	ctx.JSON(http.StatusOK, dto.InterviewDetailResponse{Success: true, Interview: *interview})
}

// ListInterviews godoc
// @Summary List a user's mock interviews
// @Description Newest first.
// @Tags Interviews
// @Produce json
// @Param createdBy query string true "Creator email"
// @Success 200 {object} dto.InterviewListResponse
// @Failure 400 {object} dto.ErrorResponse "Missing createdBy"
// @Failure 500 {object} dto.ErrorResponse "Failed to list interviews"
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	createdBy := strings.TrimSpace(ctx.Query("createdBy"))
	if createdBy == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing createdBy"})
		return
	}

	interviews, err := c.interviewService.ListByCreator(ctx.Request.Context(), createdBy)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list interviews")
		return
	}
	ctx.JSON(http.StatusOK, dto.InterviewListResponse{Success: true, Interviews: interviews})
}

// GetAnsweredQuestions godoc
// @Summary List answered question indexes
// @Description Distinct indexes of questions that have at least one graded answer, ascending.
// @Tags Interviews
// @Produce json
// @Param mockId path string true "Mock interview ID"
// @Success 200 {object} dto.AnsweredQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Missing mockId"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch answered questions"
// @Router /interviews/{mockId}/answered-questions [get]
func (c *InterviewController) GetAnsweredQuestions(ctx *gin.Context) {
	mockID := strings.TrimSpace(ctx.Param("mockId"))
	if mockID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing mockId"})
		return
	}

	indexes, err := c.interviewService.AnsweredQuestions(ctx.Request.Context(), mockID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch answered questions")
		return
	}
	ctx.JSON(http.StatusOK, dto.AnsweredQuestionsResponse{AnsweredQuestions: indexes})
}
