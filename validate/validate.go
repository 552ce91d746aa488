// Package validate decides whether a candidate submission is
// acceptable for a form. It is a pure function over already-materialized
// inputs: no I/O, no clock, identical inputs always produce identical
// error maps.
package validate

import (
	"regexp"

	"github.com/mbolis/quick-forms/model"
)

// Messages surfaced to respondents. Kept byte-identical with the
// original client so saved frontends keep matching on them.
const (
	MsgAnswerAllRows = "Please answer all rows."
	MsgSelectOne     = "Please select at least one option."
	MsgRequired      = "This field is required."
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgProvideEmail  = "Please provide your email address."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of validating one submission: at most one
// message per question index, plus a separate slot for the top-level
// collected email.
type Result struct {
	Questions map[int]string
	Email     string
}

// OK reports whether the submission is acceptable.
func (r Result) OK() bool {
	return len(r.Questions) == 0 && r.Email == ""
}

// Submission checks answers (keyed by question index) against the
// form. Every question is checked independently; within one question
// slot the email-format check runs after the required check and
// overwrites it, mirroring the original last-write-wins behavior.
func Submission(form model.Form, answers map[int]model.Value, email string) Result {
	result := Result{Questions: map[int]string{}}

	for i, q := range form.Questions {
		answer := answers[i]

		if q.Required {
			if msg := requiredError(q, answer); msg != "" {
				result.Questions[i] = msg
			}
		}

		if q.Type == model.TypeEmail && answer.Kind == model.Text && answer.Text != "" {
			if !emailPattern.MatchString(answer.Text) {
				result.Questions[i] = MsgInvalidEmail
			}
		}
	}

	if form.CollectsEmail() {
		switch {
		case email == "":
			result.Email = MsgProvideEmail
		case !emailPattern.MatchString(email):
			result.Email = MsgInvalidEmail
		}
	}

	return result
}

func requiredError(q model.Question, answer model.Value) string {
	switch q.Type {
	case model.TypeGrid:
		for _, row := range q.Rows {
			if answer.Table[row] == "" {
				return MsgAnswerAllRows
			}
		}
		return ""
	case model.TypeCheckbox:
		if len(answer.List) == 0 {
			return MsgSelectOne
		}
		return ""
	default:
		// scalar shapes: blank, empty string and empty list all count
		// as unanswered
		if answer.Empty() {
			return MsgRequired
		}
		return ""
	}
}

// Email reports whether a bare address matches the respondent email
// pattern: at least one @, a dot after it, no whitespace.
func Email(address string) bool {
	return emailPattern.MatchString(address)
}
