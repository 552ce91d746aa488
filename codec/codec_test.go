package codec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mbolis/quick-forms/codec"
	"github.com/mbolis/quick-forms/model"
	"github.com/mbolis/quick-forms/schema"
)

func buildForm() model.Form {
	return schema.NormalizeForm(model.Form{
		Questions: []model.Question{
			{ID: "q-short", Type: model.TypeShort},
			{ID: "q-check", Type: model.TypeCheckbox, Options: []model.Option{{Text: "A"}, {Text: "B"}}},
			{ID: "q-grid", Type: model.TypeGrid, Rows: []string{"r1", "r2"}, Columns: []string{"c1", "c2"}},
			{ID: "q-date", Type: model.TypeDate},
			{ID: "q-file", Type: model.TypeFile},
		},
	})
}

func TestEncode_CarriesQuestionIDs(t *testing.T) {
	form := buildForm()
	answers := map[int]model.Value{
		0: model.TextValue("hi"),
		1: model.ListValue("A"),
	}

	wire := codec.Encode(form, answers)

	if len(wire) != len(form.Questions) {
		t.Fatalf("encoded %d answers, want %d", len(wire), len(form.Questions))
	}
	if wire[0].QuestionID != "q-short" || wire[0].Type != model.TypeShort {
		t.Errorf("wire[0] = %+v", wire[0])
	}
	if diff := cmp.Diff(model.TextValue("hi"), wire[0].Value); diff != "" {
		t.Errorf("wire[0].Value (-want +got):\n%s", diff)
	}
}

func TestEncode_SyntheticIDForLegacyQuestion(t *testing.T) {
	// defensive path: cannot happen after normalization
	form := model.Form{Questions: []model.Question{{Type: model.TypeShort}}}

	wire := codec.Encode(form, map[int]model.Value{0: model.TextValue("x")})
	if wire[0].QuestionID != "q0" {
		t.Errorf("questionId = %q, want q0", wire[0].QuestionID)
	}
}

func TestEncode_FileTransmitsFilenameOnly(t *testing.T) {
	form := model.Form{Questions: []model.Question{{ID: "f", Type: model.TypeFile}}}

	wire := codec.Encode(form, map[int]model.Value{0: model.TextValue("uploads/2024/report.pdf")})
	if wire[0].Value.Text != "report.pdf" {
		t.Errorf("file value = %q, want bare filename", wire[0].Value.Text)
	}
}

func TestDecode_FillsAbsentEntriesWithDefaults(t *testing.T) {
	form := buildForm()

	answers := codec.Decode(form, nil)

	want := map[int]model.Value{
		0: model.TextValue(""),
		1: model.ListValue(),
		2: model.TableValue(map[string]string{"r1": "", "r2": ""}),
		3: model.TextValue(""),
		4: model.TextValue(""),
	}
	if diff := cmp.Diff(want, answers); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_AllTypesExceptFile(t *testing.T) {
	form := buildForm()
	answers := map[int]model.Value{
		0: model.TextValue("short answer"),
		1: model.ListValue("A", "B"),
		2: model.TableValue(map[string]string{"r1": "c1", "r2": "c2"}),
		3: model.TextValue("2024-06-01"),
		4: model.TextValue("scan.png"),
	}

	back := codec.Decode(form, codec.Encode(form, answers))

	if diff := cmp.Diff(answers, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_FileIsLossyOnPath(t *testing.T) {
	form := model.Form{Questions: []model.Question{{ID: "f", Type: model.TypeFile}}}
	answers := map[int]model.Value{0: model.TextValue("dir/photo.jpg")}

	back := codec.Decode(form, codec.Encode(form, answers))

	// only the filename survives; the documented lossy case
	if back[0].Text != "photo.jpg" {
		t.Errorf("got %q, want photo.jpg", back[0].Text)
	}
}

func TestDecode_PositionalFallback(t *testing.T) {
	form := model.Form{Questions: []model.Question{{Type: model.TypeShort}}}
	wire := []model.WireAnswer{{QuestionID: "q0", Type: model.TypeShort, Value: model.TextValue("v")}}

	answers := codec.Decode(form, wire)
	if answers[0].Text != "v" {
		t.Errorf("positional fallback failed: %+v", answers[0])
	}
}
