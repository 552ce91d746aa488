// Package stats reduces a collection of response records into
// per-form aggregate statistics. The fold is commutative: reordering
// the input never changes the result, so paginated or concurrent
// retrieval from storage is safe.
package stats

import (
	"fmt"
	"time"

	"github.com/mbolis/quick-forms/model"
)

// Aggregate computes statistics over the responses to one form.
// Records bearing a different form id are skipped. The form's question
// definitions are never consulted: distribution keys are the raw value
// strings as submitted, so historical stats survive later schema edits.
//
// Duration policy: a record missing either timestamp, or with
// end before start, contributes zero to the average rather than
// aborting the aggregation. Zero responses yield a zero average.
func Aggregate(formID int, responses []model.Response) model.Stats {
	result := model.Stats{
		QuestionStats: map[string]model.QuestionStat{},
	}

	var totalDuration float64
	for _, r := range responses {
		if r.FormID != formID {
			continue
		}
		result.TotalResponses++
		totalDuration += durationMillis(r)

		for _, answer := range r.Answers {
			qs, ok := result.QuestionStats[answer.QuestionID]
			if !ok {
				qs = model.QuestionStat{AnswerDistribution: map[string]int{}}
			}

			// one per answer instance, regardless of how many picks
			// the value carries
			qs.TotalAnswers++

			switch answer.Value.Kind {
			case model.List:
				for _, pick := range answer.Value.List {
					qs.AnswerDistribution[pick]++
				}
			case model.Table:
				for row, col := range answer.Value.Table {
					qs.AnswerDistribution[fmt.Sprintf("%s: %s", row, col)]++
				}
			default:
				qs.AnswerDistribution[answer.Value.Text]++
			}

			result.QuestionStats[answer.QuestionID] = qs
		}
	}

	if result.TotalResponses > 0 {
		result.AverageDuration = totalDuration / float64(result.TotalResponses)
	}
	return result
}

func durationMillis(r model.Response) float64 {
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return 0
	}
	d := r.EndTime.Sub(r.StartTime)
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
