package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockmate/config"
	"github.com/lshigami/mockmate/internal/controller"
	"github.com/lshigami/mockmate/internal/model"
	"github.com/lshigami/mockmate/internal/repository"
	"github.com/lshigami/mockmate/internal/service"
	"github.com/lshigami/mockmate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Complete(context.Context, service.CompletionRequest) (string, error) {
	return s.reply, s.err
}

func setupRouter(t *testing.T, llm service.GeminiLLMService) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Create(&model.MockInterview{
		MockID:           "mock-1",
		JSONMockResponse: `[{"Question":"What is a goroutine?","Answer":"A lightweight thread."}]`,
		JobPosition:      "Backend Engineer",
		JobDescription:   "Go",
		CreatedBy:        "dev@example.com",
	}).Error)

	cfg := &config.Config{}
	cfg.Gemini.FeedbackModel = "feedback-model"
	svc := service.NewFeedbackService(
		repository.NewMockInterviewRepository(db),
		repository.NewInterviewAnswerRepository(db),
		llm,
		service.NewScoreConverterService(),
		cfg,
	)

	r := gin.New()
	r.Use(controller.Recovery())
	NewFeedbackController(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, db
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func answerCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.InterviewAnswer{}).Count(&n).Error)
	return n
}

const feedbackBody = `{"question":"What is a goroutine?","correctAns":"A lightweight thread.","answer":"A thread managed by the Go runtime.","mockIdRef":"mock-1","userEmail":"dev@example.com"}`

func TestSubmitFeedback(t *testing.T) {
	r, db := setupRouter(t, &stubLLM{reply: "```json\n{\"feedback\":\"Mention stack growth.\",\"rating\":\"7\"}\n```"})

	w := doRequest(r, http.MethodPost, "/api/v1/feedback", feedbackBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true,"feedback":"Mention stack growth.","rating":"7"}`, w.Body.String())

	var stored model.InterviewAnswer
	require.NoError(t, db.Take(&stored).Error)
	assert.Equal(t, "7", stored.Rating)
	assert.Equal(t, "mock-1", stored.MockIDRef)
	require.NotNil(t, stored.QuestionIndex)
	assert.Equal(t, 0, *stored.QuestionIndex)
}

func TestSubmitFeedback_MissingFields(t *testing.T) {
	r, db := setupRouter(t, &stubLLM{reply: `{"feedback":"ok","rating":5}`})

	body := `{"question":"What is a goroutine?","correctAns":"A lightweight thread.","answer":"x","userEmail":"dev@example.com"}`
	w := doRequest(r, http.MethodPost, "/api/v1/feedback", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	assert.Zero(t, answerCount(t, db))
}

func TestSubmitFeedback_UnknownInterview(t *testing.T) {
	r, db := setupRouter(t, &stubLLM{reply: `{"feedback":"ok","rating":5}`})

	body := `{"question":"q","correctAns":"c","answer":"a","mockIdRef":"nope","userEmail":"dev@example.com"}`
	w := doRequest(r, http.MethodPost, "/api/v1/feedback", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, answerCount(t, db))
}

func TestSubmitFeedback_UnusableReply(t *testing.T) {
	for _, reply := range []string{"Great answer, 7/10", `{"feedback":"Good."}`} {
		r, db := setupRouter(t, &stubLLM{reply: reply})

		w := doRequest(r, http.MethodPost, "/api/v1/feedback", feedbackBody)
		require.Equal(t, http.StatusBadGateway, w.Code, reply)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, reply, resp["rawContent"])
		assert.Zero(t, answerCount(t, db))
	}
}

func TestSubmitFeedback_UpstreamFailure(t *testing.T) {
	r, db := setupRouter(t, &stubLLM{err: service.ErrLLMUnavailable})

	w := doRequest(r, http.MethodPost, "/api/v1/feedback", feedbackBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to generate feedback"}`, w.Body.String())
	assert.Zero(t, answerCount(t, db))
}

func TestGetFeedback(t *testing.T) {
	r, _ := setupRouter(t, &stubLLM{reply: `{"feedback":"Solid.","rating":8}`})

	w := doRequest(r, http.MethodGet, "/api/v1/feedback/mock-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No feedback found for this interview"}`, w.Body.String())

	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/v1/feedback", feedbackBody).Code)

	w = doRequest(r, http.MethodGet, "/api/v1/feedback/mock-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Feedback []struct {
			Question      string `json:"question"`
			Answer        string `json:"answer"`
			Feedback      string `json:"feedback"`
			Rating        string `json:"rating"`
			QuestionIndex *int   `json:"questionIndex"`
		} `json:"feedback"`
		Summary struct {
			TotalQuestions int     `json:"totalQuestions"`
			AverageRating  float64 `json:"averageRating"`
			ScorePercent   int     `json:"scorePercent"`
			HighestRating  int     `json:"highestRating"`
			LowestRating   int     `json:"lowestRating"`
			PassedCount    int     `json:"passedCount"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Feedback, 1)
	assert.Equal(t, "Solid.", resp.Feedback[0].Feedback)
	assert.Equal(t, "8", resp.Feedback[0].Rating)
	assert.Equal(t, "A thread managed by the Go runtime.", resp.Feedback[0].Answer)
	assert.Equal(t, 1, resp.Summary.TotalQuestions)
	assert.Equal(t, 8.0, resp.Summary.AverageRating)
	assert.Equal(t, 80, resp.Summary.ScorePercent)
	assert.Equal(t, 8, resp.Summary.HighestRating)
	assert.Equal(t, 8, resp.Summary.LowestRating)
	assert.Equal(t, 1, resp.Summary.PassedCount)
}
