package service

import (
	"encoding/json"
	"testing"

	"github.com/lshigami/mockmate/internal/dto"
	"github.com/lshigami/mockmate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRating(t *testing.T) {
	sc := NewScoreConverterService()
	tests := []struct {
		raw  string
		want string
	}{
		{`"7"`, "7"},
		{`7`, "7"},
		{`0`, "0"},
		{`"0"`, "0"},
		{`"8/10"`, "8"},
		{`" 6 / 10 "`, "6"},
		{`7.5`, "8"},
		{`"6.4"`, "6"},
		{`12`, "10"},
		{`-3`, "0"},
		{`1e20`, "10"},
		{`-1e20`, "0"},
		{`10.4`, "10"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := sc.NormalizeRating(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRating_Rejects(t *testing.T) {
	sc := NewScoreConverterService()
	for _, raw := range []string{``, `null`, `""`, `"great"`, `true`, `{"score":7}`, `[7]`} {
		t.Run(raw, func(t *testing.T) {
			_, err := sc.NormalizeRating(json.RawMessage(raw))
			assert.Error(t, err)
		})
	}
}

func TestSummarize(t *testing.T) {
	sc := NewScoreConverterService()

	assert.Equal(t, dto.FeedbackSummaryDTO{}, sc.Summarize(nil))

	got := sc.Summarize([]model.InterviewAnswer{
		{Answer: "I would use a channel", Rating: "7"},
		{Answer: "  ", Rating: "0"},
		{Answer: "Mutex", Rating: "8"},
		{Answer: "legacy row", Rating: "n/a"},
	})
	assert.Equal(t, dto.FeedbackSummaryDTO{
		TotalQuestions:     4,
		CompletedQuestions: 3,
		AverageRating:      5,
		ScorePercent:       50,
		HighestRating:      8,
		LowestRating:       0,
		PassedCount:        2,
	}, got)

	got = sc.Summarize([]model.InterviewAnswer{{Answer: "a", Rating: "7"}, {Answer: "b", Rating: "8"}, {Answer: "c", Rating: "8"}})
	assert.Equal(t, 7.7, got.AverageRating)
	assert.Equal(t, 77, got.ScorePercent)
	assert.Equal(t, 8, got.HighestRating)
	assert.Equal(t, 7, got.LowestRating)
	assert.Equal(t, 3, got.PassedCount)

	got = sc.Summarize([]model.InterviewAnswer{{Answer: "a", Rating: "3"}, {Answer: "b", Rating: "5"}, {Answer: "c", Rating: "6"}})
	assert.Equal(t, 6, got.HighestRating)
	assert.Equal(t, 3, got.LowestRating)
	assert.Equal(t, 1, got.PassedCount, "only ratings of 6 and above pass")
}
