package model

// Stats is the aggregate over all responses to one form.
type Stats struct {
	TotalResponses int `json:"totalResponses"`
	// AverageDuration is in milliseconds, 0 when no responses exist.
	AverageDuration float64                 `json:"averageDuration"`
	QuestionStats   map[string]QuestionStat `json:"questionStats"`
}

// QuestionStat accumulates every answer bearing one question id.
// TotalAnswers counts answer instances; AnswerDistribution counts
// picks, so a checkbox answer increments several distribution keys
// while adding one to TotalAnswers.
type QuestionStat struct {
	TotalAnswers       int            `json:"totalAnswers"`
	AnswerDistribution map[string]int `json:"answerDistribution"`
}
