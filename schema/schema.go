// Package schema holds the question-type catalog: which auxiliary
// fields each variant recognizes, its canonical defaults, and the
// normalization that repairs partial form documents on load.
package schema

import (
	"github.com/gofrs/uuid"

	"github.com/mbolis/quick-forms/model"
)

const (
	DefaultLinearMin = 1
	DefaultLinearMax = 5

	// DefaultGridType is the only supported grid semantics:
	// single-select per row.
	DefaultGridType = "multiple"
)

// FieldSet names the auxiliary field groups a question type recognizes.
type FieldSet struct {
	Options bool
	Scale   bool
	Grid    bool
}

// Fields is a pure lookup of the auxiliary payload for a type.
// Unknown types recognize nothing.
func Fields(t model.QuestionType) FieldSet {
	switch t {
	case model.TypeMultiple, model.TypeCheckbox, model.TypeDropdown:
		return FieldSet{Options: true}
	case model.TypeLinear:
		return FieldSet{Scale: true}
	case model.TypeGrid:
		return FieldSet{Grid: true}
	default:
		return FieldSet{}
	}
}

// New returns a fresh question of the given type with a generated id
// and the canonical default payload: one seed option for choice types,
// a 1x1 grid, a 1..5 scale.
func New(t model.QuestionType) model.Question {
	q := model.Question{
		ID:   newID(),
		Type: t,
	}
	switch fs := Fields(t); {
	case fs.Options:
		q.Options = []model.Option{{Text: "Option 1", Value: "Option 1"}}
	case fs.Scale:
		q.Min, q.Max = DefaultLinearMin, DefaultLinearMax
	case fs.Grid:
		q.Rows = []string{"Row 1"}
		q.Columns = []string{"Col 1"}
		q.GridType = DefaultGridType
	}
	return q
}

// DefaultAnswer is the empty answer for a question: empty selection for
// checkboxes, a table with every row blank for grids, empty text for
// everything else. Used to seed respondent state and to fill absent
// entries when decoding.
func DefaultAnswer(q model.Question) model.Value {
	switch q.Type {
	case model.TypeCheckbox:
		return model.ListValue()
	case model.TypeGrid:
		rows := make(map[string]string, len(q.Rows))
		for _, row := range q.Rows {
			rows[row] = ""
		}
		return model.TableValue(rows)
	default:
		return model.TextValue("")
	}
}

func newID() string {
	return uuid.Must(uuid.NewV4()).String()
}
