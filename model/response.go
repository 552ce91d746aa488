package model

import "time"

// WireAnswer is one answer as transmitted to the collection endpoint
// and persisted inside a response record.
type WireAnswer struct {
	QuestionID string       `json:"questionId"`
	Type       QuestionType `json:"type"`
	Value      Value        `json:"value"`
	Timestamp  time.Time    `json:"timestamp,omitempty"`
}

// Response is one respondent's full submission. Immutable once stored,
// except for deletion by an administrator.
type Response struct {
	ID              int          `json:"id,omitempty"`
	FormID          int          `json:"formId"`
	Answers         []WireAnswer `json:"answers"`
	RespondentEmail string       `json:"respondentEmail,omitempty"`
	IP              string       `json:"ip,omitempty"`
	UserAgent       string       `json:"userAgent,omitempty"`
	StartTime       time.Time    `json:"startTime,omitempty"`
	EndTime         time.Time    `json:"endTime,omitempty"`
}
