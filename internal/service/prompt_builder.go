package service

import (
	"fmt"
	"strings"
)

// BuildInterviewPrompt asks the model for questions with reference answers as
// a JSON list of {Question, Answer} objects. Empty fields are interpolated as-is.
func BuildInterviewPrompt(jobPosition, jobDescription string, yearsOfExperience, questionCount int) string {
	var b strings.Builder
	b.WriteString("You are an AI Interviewer. You will ask questions based on the job position, job description, and years of experience provided by the user. ")
	b.WriteString(fmt.Sprintf("The user is applying for a %s position with %d years of experience. ", jobPosition, yearsOfExperience))
	b.WriteString(fmt.Sprintf("The job description is: %s. ", jobDescription))
	b.WriteString(fmt.Sprintf("Please generate %d interview questions along with answers in JSON format, Give Question and Answer as field in JSON", questionCount))
	return b.String()
}

// BuildFeedbackPrompt asks for short feedback and a rating out of 10 as a JSON
// object with "feedback" and "rating" keys.
func BuildFeedbackPrompt(question, userAnswer string) string {
	return fmt.Sprintf(`Question:"%s" and User Answer:"%s". `+
		`Depending on the question and user answer, provide feedback on the user's response on areas of improvement if any (in just 3-5 lines) along with a rating out of 10. `+
		`The rating must be a whole number from 0 to 10. `+
		`Provide the feedback in JSON format with keys "feedback" and "rating".`,
		question, userAnswer)
}
