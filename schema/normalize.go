package schema

import "github.com/mbolis/quick-forms/model"

// NormalizeForm repairs a possibly-partial form document into one that
// satisfies every data-model invariant. It never fails: documents from
// earlier schema versions come in with missing settings, missing
// question ids or missing grid payloads, and all of those are defaulted
// rather than rejected.
//
// Guarantees on the result:
//   - Settings is non-nil (showProgress defaults to true)
//   - Questions is non-nil
//   - every question has a non-empty id
//   - grid questions have rows, columns and gridType defined
//   - options are filled {text, value} pairs
//   - linear bounds satisfy min < max
func NormalizeForm(form model.Form) model.Form {
	if form.Settings == nil {
		form.Settings = &model.Settings{ShowProgress: true}
	}

	questions := make([]model.Question, len(form.Questions))
	for i, q := range form.Questions {
		questions[i] = NormalizeQuestion(q)
	}
	form.Questions = questions

	return form
}

// NormalizeQuestion applies the per-variant defaults of NormalizeForm
// to a single question.
func NormalizeQuestion(q model.Question) model.Question {
	if q.ID == "" {
		q.ID = newID()
	}
	if q.Type == "" {
		q.Type = model.TypeShort
	}

	switch fs := Fields(q.Type); {
	case fs.Options:
		q.Options = normalizeOptions(q.Options)
	case fs.Scale:
		if q.Min == 0 && q.Max == 0 {
			q.Min, q.Max = DefaultLinearMin, DefaultLinearMax
		}
		if q.Min >= q.Max {
			// authored bounds are broken, fall back to the canonical scale
			q.Min, q.Max = DefaultLinearMin, DefaultLinearMax
		}
	case fs.Grid:
		if q.Rows == nil {
			q.Rows = []string{}
		}
		if q.Columns == nil {
			q.Columns = []string{}
		}
		if q.GridType == "" {
			q.GridType = DefaultGridType
		}
	}

	return q
}

func normalizeOptions(options []model.Option) []model.Option {
	out := make([]model.Option, 0, len(options))
	for _, o := range options {
		if o.Value == "" {
			o.Value = o.Text
		}
		if o.Text == "" {
			o.Text = o.Value
		}
		out = append(out, o)
	}
	return out
}
