package service

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lshigami/mockmate/internal/dto"
	"github.com/lshigami/mockmate/internal/model"
)

const (
	MinRating = 0
	MaxRating = 10
	// Answers rated at or above this count as passed.
	PassingRating = 6
)

// Accepts "7", "7.5", "7/10" and "7 / 10".
var ratingPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*(?:/\s*10)?$`)

type ScoreConverterService interface {
	// NormalizeRating turns the model's rating value into the stored form.
	NormalizeRating(raw json.RawMessage) (string, error)
	Summarize(answers []model.InterviewAnswer) dto.FeedbackSummaryDTO
}

type scoreConverterService struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterService{}
}

// NormalizeRating accepts a JSON number or numeric string, rounds it to a
// whole number and clamps it to 0..10. Zero is a valid rating; only absent,
// null or non-numeric values are rejected.
func (s *scoreConverterService) NormalizeRating(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", fmt.Errorf("rating is missing")
	}

	var value float64
	if trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return "", fmt.Errorf("rating is not a valid string: %w", err)
		}
		m := ratingPattern.FindStringSubmatch(strings.TrimSpace(str))
		if m == nil {
			return "", fmt.Errorf("rating %q is not numeric", str)
		}
		value, _ = strconv.ParseFloat(m[1], 64)
	} else if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("rating must be a number or numeric string, got %s", trimmed)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("rating %s is not a finite number", trimmed)
	}
	// Clamp before converting; out-of-range float to int conversion is undefined.
	value = math.Max(MinRating, math.Min(MaxRating, value))
	return strconv.Itoa(int(math.Round(value))), nil
}

// Summarize computes the averages and quick stats shown on the feedback page. Rows whose
// stored rating is not an integer are left out of the average.
func (s *scoreConverterService) Summarize(answers []model.InterviewAnswer) dto.FeedbackSummaryDTO {
	summary := dto.FeedbackSummaryDTO{TotalQuestions: len(answers)}

	total, rated := 0, 0
	for _, a := range answers {
		if strings.TrimSpace(a.Answer) != "" {
			summary.CompletedQuestions++
		}
		r, err := strconv.Atoi(strings.TrimSpace(a.Rating))
		if err != nil {
			continue
		}
		if rated == 0 || r > summary.HighestRating {
			summary.HighestRating = r
		}
		if rated == 0 || r < summary.LowestRating {
			summary.LowestRating = r
		}
		if r >= PassingRating {
			summary.PassedCount++
		}
		total += r
		rated++
	}
	if rated == 0 {
		return summary
	}

	avg := float64(total) / float64(rated)
	summary.AverageRating = math.Round(avg*10) / 10
	summary.ScorePercent = int(math.Round(avg * 10))
	return summary
}
