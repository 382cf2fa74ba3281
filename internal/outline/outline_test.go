package outline

import (
	"errors"
	"testing"

	"github.com/patrickprogramme/podmark/pkg/model"
)

func sampleEntries() []model.OutlineEntry {
	return []model.OutlineEntry{
		{TimeCode: model.MustTimeCode(0, 0, 0), Text: "Start"},
		{TimeCode: model.MustTimeCode(0, 1, 10), Text: "Introducing Bradley and Luxonis"},
		{TimeCode: model.MustTimeCode(0, 17, 24), Text: "Introducing Rae robot"},
		{TimeCode: model.MustTimeCode(0, 53, 44), Text: "How RobotHub works"},
		{TimeCode: model.MustTimeCode(1, 4, 13), Text: "Security on RobotHub"},
		{TimeCode: model.MustTimeCode(1, 31, 59), Text: "Links to share"},
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	want := sampleEntries()

	got, err := Parse(Format(want))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestParse_KeepsDocumentOrder(t *testing.T) {
	doc := "10:00 Later\n00:30 Earlier\n"
	got, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 || got[0].Text != "Later" || got[1].Text != "Earlier" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].TimeCode != model.MustTimeCode(0, 0, 30) {
		t.Fatalf("two-part time code parsed as %v", got[1].TimeCode)
	}
}

func TestParse_LabelWithSpacesAndCRLF(t *testing.T) {
	got, err := Parse("1:02:03 A label: with  spaces\r\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].Text != "A label: with  spaces" {
		t.Fatalf("label = %q", got[0].Text)
	}
	if got[0].TimeCode != model.MustTimeCode(1, 2, 3) {
		t.Fatalf("time code = %v", got[0].TimeCode)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %+v", got)
	}
}

func TestParse_InvalidTimeCode(t *testing.T) {
	tests := []string{
		"00:60:00 Introducing Bradley and Luxonis",
		"00:01:60 Introducing Bradley and Luxonis",
		"00:1:00 Bad minutes",
		"00:00:00 Fine\n1:2 Bad",
	}
	for _, doc := range tests {
		t.Run(doc, func(t *testing.T) {
			_, err := Parse(doc)
			if !errors.Is(err, model.ErrInvalidTimeCode) {
				t.Fatalf("expected ErrInvalidTimeCode, got %v", err)
			}
			if errors.Is(err, ErrInvalidOutlineEntry) {
				t.Fatalf("time code error must not be an outline entry error: %v", err)
			}
		})
	}
}

func TestParse_InvalidEntry(t *testing.T) {
	tests := []struct {
		doc      string
		wantLine int
	}{
		{"00:01:00 ", 1},
		{"00:01:00", 1},
		{"Intro without time code", 1},
		{"00:00:00 Start\n\n00:02:00 Next", 2},
		{"00:00:00 Start\nno-time here", 2},
	}
	for _, tc := range tests {
		t.Run(tc.doc, func(t *testing.T) {
			_, err := Parse(tc.doc)
			if !errors.Is(err, ErrInvalidOutlineEntry) {
				t.Fatalf("expected ErrInvalidOutlineEntry, got %v", err)
			}
			var entryErr *EntryError
			if !errors.As(err, &entryErr) {
				t.Fatalf("expected *EntryError, got %T", err)
			}
			if entryErr.Line != tc.wantLine {
				t.Fatalf("line = %d; want %d", entryErr.Line, tc.wantLine)
			}
		})
	}
}
