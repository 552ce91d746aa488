package model

import "encoding/json"

// QuestionType is the closed catalog of question variants.
// Adding a member means touching schema, validate, codec and stats.
type QuestionType string

const (
	TypeShort     QuestionType = "short"
	TypeParagraph QuestionType = "paragraph"
	TypeMultiple  QuestionType = "multiple"
	TypeCheckbox  QuestionType = "checkbox"
	TypeDropdown  QuestionType = "dropdown"
	TypeLinear    QuestionType = "linear"
	TypeGrid      QuestionType = "grid"
	TypeDate      QuestionType = "date"
	TypeTime      QuestionType = "time"
	TypeEmail     QuestionType = "email"
	TypeNumber    QuestionType = "number"
	TypePhone     QuestionType = "phone"
	TypeFile      QuestionType = "file"
)

var allTypes = []QuestionType{
	TypeShort, TypeParagraph, TypeMultiple, TypeCheckbox, TypeDropdown,
	TypeLinear, TypeGrid, TypeDate, TypeTime, TypeEmail, TypeNumber,
	TypePhone, TypeFile,
}

// Types returns the full catalog in display order.
func Types() []QuestionType {
	out := make([]QuestionType, len(allTypes))
	copy(out, allTypes)
	return out
}

func (t QuestionType) Known() bool {
	for _, k := range allTypes {
		if t == k {
			return true
		}
	}
	return false
}

type Question struct {
	ID          string       `json:"id,omitempty"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`

	// choice payload (multiple, checkbox, dropdown)
	Options []Option `json:"options,omitempty"`

	// linear scale payload
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	MinLabel string `json:"minLabel,omitempty"`
	MaxLabel string `json:"maxLabel,omitempty"`

	// grid payload
	Rows     []string `json:"rows,omitempty"`
	Columns  []string `json:"columns,omitempty"`
	GridType string   `json:"gridType,omitempty"`
}

// Option is a choice entry. On the wire it may be a bare label string
// or a partial {text, value} object; text and value are synonyms and
// either one fills in for the other.
type Option struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

func (o *Option) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		o.Text, o.Value = label, label
		return nil
	}

	var pair struct {
		Text  string `json:"text"`
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	o.Text, o.Value = pair.Text, pair.Value
	if o.Value == "" {
		o.Value = o.Text
	}
	if o.Text == "" {
		o.Text = o.Value
	}
	return nil
}
