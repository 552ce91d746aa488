package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind tags the shape of an answer value.
type ValueKind int

const (
	// Blank marks an answer that was never set. It marshals as null.
	Blank ValueKind = iota
	// Text is a scalar string: short, paragraph, email, number, phone,
	// date, time, dropdown, multiple, linear and file (filename) answers.
	Text
	// List is a set of selected labels: checkbox answers.
	List
	// Table maps grid row labels to the selected column label.
	Table
)

// Value is the answer to a single question. Exactly one of the payload
// fields is meaningful, selected by Kind. On the wire it is a plain
// JSON string, array or object, matching the shapes the original
// clients submit.
type Value struct {
	Kind  ValueKind
	Text  string
	List  []string
	Table map[string]string
}

func TextValue(s string) Value        { return Value{Kind: Text, Text: s} }
func ListValue(items ...string) Value { return Value{Kind: List, List: items} }
func TableValue(rows map[string]string) Value {
	return Value{Kind: Table, Table: rows}
}

// Empty reports whether the value counts as unanswered for its shape.
func (v Value) Empty() bool {
	switch v.Kind {
	case Text:
		return v.Text == ""
	case List:
		return len(v.List) == 0
	case Table:
		for _, col := range v.Table {
			if col != "" {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Text:
		return json.Marshal(v.Text)
	case List:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case Table:
		if v.Table == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Table)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("answer value: %w", err)
		}
		*v = Value{Kind: List, List: list}
	case '{':
		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return fmt.Errorf("answer value: %w", err)
		}
		*v = Value{Kind: Table, Table: table}
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("answer value: %w", err)
		}
		*v = Value{Kind: Text, Text: text}
	default:
		// bare numbers and booleans come in from hand-rolled clients;
		// keep their literal text
		var lit json.Number
		if err := json.Unmarshal(data, &lit); err != nil {
			var b bool
			if err := json.Unmarshal(data, &b); err != nil {
				return fmt.Errorf("answer value: %w", err)
			}
			*v = Value{Kind: Text, Text: fmt.Sprintf("%t", b)}
			return nil
		}
		*v = Value{Kind: Text, Text: lit.String()}
	}
	return nil
}
