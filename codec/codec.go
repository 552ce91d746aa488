// Package codec maps in-memory answer sets, keyed by question index,
// to and from the wire answers submitted to the collection endpoint.
package codec

import (
	"fmt"
	"path"

	"github.com/mbolis/quick-forms/model"
	"github.com/mbolis/quick-forms/schema"
)

// Encode serializes the answers for submission, in question order.
// The question id is carried from the form; questions that somehow
// survived without one (should not happen after normalization) get a
// synthetic positional q<index> id. File answers transmit the bare
// filename only, never bytes or paths.
func Encode(form model.Form, answers map[int]model.Value) []model.WireAnswer {
	wire := make([]model.WireAnswer, 0, len(form.Questions))
	for i, q := range form.Questions {
		value := answers[i]
		if q.Type == model.TypeFile && value.Text != "" {
			value = model.TextValue(path.Base(value.Text))
		}
		wire = append(wire, model.WireAnswer{
			QuestionID: questionID(q, i),
			Type:       q.Type,
			Value:      value,
		})
	}
	return wire
}

// Decode rehydrates an answer set from wire answers, e.g. when
// resuming a cached draft. Entries are matched by question id, with a
// positional q<index> fallback; absent or blank entries are filled with
// the same per-type defaults normalization uses.
func Decode(form model.Form, wire []model.WireAnswer) map[int]model.Value {
	byID := make(map[string]model.Value, len(wire))
	for _, w := range wire {
		byID[w.QuestionID] = w.Value
	}

	answers := make(map[int]model.Value, len(form.Questions))
	for i, q := range form.Questions {
		value, ok := byID[questionID(q, i)]
		if !ok {
			value, ok = byID[fmt.Sprintf("q%d", i)]
		}
		if !ok || value.Kind == model.Blank {
			value = schema.DefaultAnswer(q)
		}
		answers[i] = value
	}
	return answers
}

func questionID(q model.Question, index int) string {
	if q.ID != "" {
		return q.ID
	}
	return fmt.Sprintf("q%d", index)
}
