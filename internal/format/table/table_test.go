package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	lines := Format([]Column{{Header: "LABEL"}, {Header: "N", Align: AlignRight}}, [][]string{
		{"Fit", "1"},
		{"Quality", "12"},
	})
	want := []string{
		"LABEL     N",
		"Fit       1",
		"Quality  12",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFormatMeasuresCells(t *testing.T) {
	lines := Format([]Column{{}, {}}, [][]string{
		{"▾ Settings", "group"},
		{"Fit", "action"},
	})
	if lines[0] != "▾ Settings  group" || lines[1] != "Fit         action" {
		t.Fatalf("unexpected padding %q", lines)
	}
}

func TestFormatEmpty(t *testing.T) {
	if lines := Format(nil, [][]string{{"a"}}); lines != nil {
		t.Fatalf("expected nil without columns, got %q", lines)
	}
	if lines := Format([]Column{{}}, nil); lines != nil {
		t.Fatalf("expected nil without rows, got %q", lines)
	}
}
