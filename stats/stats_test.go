package stats_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mbolis/quick-forms/model"
	"github.com/mbolis/quick-forms/stats"
)

func TestAggregate_ZeroResponses(t *testing.T) {
	got := stats.Aggregate(1, nil)

	want := model.Stats{
		TotalResponses:  0,
		AverageDuration: 0,
		QuestionStats:   map[string]model.QuestionStat{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("empty input (-want +got):\n%s", diff)
	}
}

func TestAggregate_CheckboxCountingAsymmetry(t *testing.T) {
	// totalAnswers counts respondents; the distribution counts picks
	responses := []model.Response{
		{FormID: 1, Answers: []model.WireAnswer{
			{QuestionID: "q1", Type: model.TypeCheckbox, Value: model.ListValue("A", "B")},
		}},
		{FormID: 1, Answers: []model.WireAnswer{
			{QuestionID: "q1", Type: model.TypeCheckbox, Value: model.ListValue("A")},
		}},
	}

	got := stats.Aggregate(1, responses)

	want := model.QuestionStat{
		TotalAnswers:       2,
		AnswerDistribution: map[string]int{"A": 2, "B": 1},
	}
	if diff := cmp.Diff(want, got.QuestionStats["q1"]); diff != "" {
		t.Errorf("q1 stats (-want +got):\n%s", diff)
	}
}

func TestAggregate_ScalarDistribution(t *testing.T) {
	responses := []model.Response{
		{FormID: 3, Answers: []model.WireAnswer{
			{QuestionID: "sat", Value: model.TextValue("satisfied")},
		}},
		{FormID: 3, Answers: []model.WireAnswer{
			{QuestionID: "sat", Value: model.TextValue("satisfied")},
		}},
		{FormID: 3, Answers: []model.WireAnswer{
			{QuestionID: "sat", Value: model.TextValue("neutral")},
		}},
	}

	got := stats.Aggregate(3, responses)

	want := model.QuestionStat{
		TotalAnswers:       3,
		AnswerDistribution: map[string]int{"satisfied": 2, "neutral": 1},
	}
	if diff := cmp.Diff(want, got.QuestionStats["sat"]); diff != "" {
		t.Errorf("distribution (-want +got):\n%s", diff)
	}
}

func TestAggregate_GridRowColumnKeys(t *testing.T) {
	responses := []model.Response{
		{FormID: 1, Answers: []model.WireAnswer{
			{QuestionID: "g", Value: model.TableValue(map[string]string{"Service": "Good", "Price": "Bad"})},
		}},
	}

	got := stats.Aggregate(1, responses)

	want := model.QuestionStat{
		TotalAnswers:       1,
		AnswerDistribution: map[string]int{"Service: Good": 1, "Price: Bad": 1},
	}
	if diff := cmp.Diff(want, got.QuestionStats["g"]); diff != "" {
		t.Errorf("grid distribution (-want +got):\n%s", diff)
	}
}

func TestAggregate_AverageDuration(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	responses := []model.Response{
		{FormID: 1, StartTime: base, EndTime: base.Add(30 * time.Second)},
		{FormID: 1, StartTime: base, EndTime: base.Add(90 * time.Second)},
	}

	got := stats.Aggregate(1, responses)
	if got.AverageDuration != 60_000 {
		t.Errorf("averageDuration = %v ms, want 60000", got.AverageDuration)
	}
}

func TestAggregate_BrokenTimestampsContributeZero(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	responses := []model.Response{
		{FormID: 1, StartTime: base, EndTime: base.Add(time.Minute)},
		// both timestamps missing, start missing, reversed: all zero
		{FormID: 1},
		{FormID: 1, EndTime: base},
		{FormID: 1, StartTime: base.Add(time.Hour), EndTime: base},
	}

	got := stats.Aggregate(1, responses)

	if got.TotalResponses != 4 {
		t.Errorf("totalResponses = %d, want 4", got.TotalResponses)
	}
	if got.AverageDuration != 15_000 {
		t.Errorf("averageDuration = %v ms, want 15000", got.AverageDuration)
	}
}

func TestAggregate_SkipsForeignForms(t *testing.T) {
	responses := []model.Response{
		{FormID: 1, Answers: []model.WireAnswer{{QuestionID: "q", Value: model.TextValue("x")}}},
		{FormID: 2, Answers: []model.WireAnswer{{QuestionID: "q", Value: model.TextValue("y")}}},
	}

	got := stats.Aggregate(1, responses)
	if got.TotalResponses != 1 {
		t.Errorf("totalResponses = %d, want 1", got.TotalResponses)
	}
	if got.QuestionStats["q"].AnswerDistribution["y"] != 0 {
		t.Error("foreign form leaked into the distribution")
	}
}

func TestAggregate_InvariantUnderPermutation(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	responses := []model.Response{}
	for i := 0; i < 50; i++ {
		responses = append(responses, model.Response{
			FormID:    7,
			StartTime: base,
			EndTime:   base.Add(time.Duration(i) * time.Second),
			Answers: []model.WireAnswer{
				{QuestionID: "q1", Value: model.TextValue([]string{"a", "b", "c"}[i%3])},
				{QuestionID: "q2", Value: model.ListValue("x", []string{"y", "z"}[i%2])},
			},
		})
	}

	want := stats.Aggregate(7, responses)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		rng.Shuffle(len(responses), func(a, b int) {
			responses[a], responses[b] = responses[b], responses[a]
		})
		got := stats.Aggregate(7, responses)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("shuffle %d changed the result (-want +got):\n%s", i, diff)
		}
	}
}
