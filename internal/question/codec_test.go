package question

import (
	"errors"
	"reflect"
	"testing"
)

// TestDecodeEncodeRoundTrip verifies trimmed rows survive a round trip.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	rows := [][]string{
		{"What is 2+2?", "3", "4", "5", "6", "B"},
		{"Pick D", "w", "x", "y", "z", "D"},
		{"Commas, quotes \"and\" more", "a,b", "c", "d", "e", "A"},
	}
	for _, row := range rows {
		q, err := Decode(row)
		if err != nil {
			t.Fatalf("expected row %v to decode: %v", row, err)
		}
		if got := Encode(q); !reflect.DeepEqual(got, row) {
			t.Fatalf("expected %v, got %v", row, got)
		}
	}
}

// TestDecodeTrimsAndUppercases verifies decode normalizes fields.
func TestDecodeTrimsAndUppercases(t *testing.T) {
	q, err := Decode([]string{"  Text ", " a", "b ", " c ", "d", " c "})
	if err != nil {
		t.Fatalf("expected row to decode: %v", err)
	}
	want := Question{Text: "Text", Choices: Choices{"a", "b", "c", "d"}, Answer: C}
	if q != want {
		t.Fatalf("expected %+v, got %+v", want, q)
	}
}

// TestDecodeRejectsMalformedRows verifies field count and answer checks.
func TestDecodeRejectsMalformedRows(t *testing.T) {
	cases := []struct {
		row  []string
		want string
	}{
		{row: nil, want: "fields: expected 6, got 0"},
		{row: []string{"only", "five", "fields", "here", "A"}, want: "fields: expected 6, got 5"},
		{row: []string{"seven", "a", "b", "c", "d", "A", "extra"}, want: "fields: expected 6, got 7"},
		{row: []string{"bad answer", "a", "b", "c", "d", " e "}, want: `answer: invalid letter "e"`},
		{row: []string{"empty answer", "a", "b", "c", "d", ""}, want: `answer: invalid letter ""`},
	}
	for _, tc := range cases {
		_, err := Decode(tc.row)
		if err == nil {
			t.Fatalf("expected row %v to be rejected", tc.row)
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) || len(validationErr.Issues) != 1 {
			t.Fatalf("expected one validation issue for %v, got %v", tc.row, err)
		}
		if err.Error() != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, err.Error())
		}
	}
}

// TestEncodeUnfilledQuestion verifies unfilled questions use the empty row.
func TestEncodeUnfilledQuestion(t *testing.T) {
	want := []string{"", "", "", "", "", "A"}
	unfilled := []Question{
		Empty(),
		{Choices: Choices{"a", "b", "c", "d"}, Answer: D},
		{Text: "bad letter", Answer: Letter(7)},
	}
	for _, q := range unfilled {
		if got := Encode(q); !reflect.DeepEqual(got, want) {
			t.Fatalf("expected empty row for %+v, got %v", q, got)
		}
	}
	decoded, err := Decode(Encode(Empty()))
	if err != nil || decoded != Empty() {
		t.Fatalf("expected empty question to be a fixed point, got %+v", decoded)
	}
}

// TestIsFilled verifies the fullness predicate.
func TestIsFilled(t *testing.T) {
	full := Question{Text: "Q", Choices: Choices{"a", "b", "c", "d"}, Answer: B}
	if !IsFilled(full) {
		t.Fatalf("expected question to be filled")
	}
	noText := full
	noText.Text = ""
	if IsFilled(noText) {
		t.Fatalf("expected empty text to be unfilled")
	}
	badLetter := full
	badLetter.Answer = Letter(4)
	if IsFilled(badLetter) {
		t.Fatalf("expected invalid answer to be unfilled")
	}
	if IsFilled(Empty()) {
		t.Fatalf("expected canonical empty question to be unfilled")
	}
	if full.CorrectChoice() != "b" {
		t.Fatalf("expected correct choice b, got %q", full.CorrectChoice())
	}
}

// TestDefaultsAreFilled verifies the built-in set is usable as padding.
func TestDefaultsAreFilled(t *testing.T) {
	defaults := Defaults()
	if len(defaults) != 5 {
		t.Fatalf("expected 5 defaults, got %d", len(defaults))
	}
	for i, q := range defaults {
		if !q.Filled() {
			t.Fatalf("expected default %d to be filled", i)
		}
	}
	if Placeholder().Answer != A || !Placeholder().Filled() {
		t.Fatalf("expected placeholder with answer A")
	}
}
