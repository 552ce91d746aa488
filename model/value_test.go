package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mbolis/quick-forms/model"
)

func TestValueUnmarshal_SniffsWireShape(t *testing.T) {
	tests := []struct {
		name string
		json string
		want model.Value
	}{
		{"scalar", `"hello"`, model.TextValue("hello")},
		{"checkbox picks", `["A","B"]`, model.ListValue("A", "B")},
		{"grid rows", `{"Row 1":"Col 2"}`, model.TableValue(map[string]string{"Row 1": "Col 2"})},
		{"null", `null`, model.Value{}},
		{"bare number", `5`, model.TextValue("5")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Value
			if err := json.Unmarshal([]byte(tt.json), &got); err != nil {
				t.Fatalf("unmarshal %s: %s", tt.json, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueMarshal_RoundTrip(t *testing.T) {
	values := []model.Value{
		model.TextValue("x"),
		model.TextValue(""),
		model.ListValue("A"),
		model.TableValue(map[string]string{"r": "c"}),
		{},
	}
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %#v: %s", v, err)
		}
		var back model.Value
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %s", data, err)
		}
		if diff := cmp.Diff(v, back); diff != "" {
			t.Errorf("round trip of %s (-want +got):\n%s", data, diff)
		}
	}
}

func TestOptionUnmarshal_StringAndPairAreSynonyms(t *testing.T) {
	tests := []struct {
		name string
		json string
		want model.Option
	}{
		{"bare label", `"Yes"`, model.Option{Text: "Yes", Value: "Yes"}},
		{"full pair", `{"text":"Very satisfied","value":"very_satisfied"}`,
			model.Option{Text: "Very satisfied", Value: "very_satisfied"}},
		{"text only", `{"text":"Maybe"}`, model.Option{Text: "Maybe", Value: "Maybe"}},
		{"value only", `{"value":"no"}`, model.Option{Text: "no", Value: "no"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Option
			if err := json.Unmarshal([]byte(tt.json), &got); err != nil {
				t.Fatalf("unmarshal %s: %s", tt.json, err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
