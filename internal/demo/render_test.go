package demo

import (
	"strings"
	"testing"
)

func TestLabelLayout(t *testing.T) {
	tests := []struct {
		name     string
		factor   float64
		wantCol  int
		wantText string
	}{
		{"hidden", 0, 14, "B o u n c e"},
		{"half", 0.5, 8, "Bounce"},
		{"revealed", 1, 0, "Bounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, text := labelLayout("Bounce", tt.factor, 40)
			if col != tt.wantCol || text != tt.wantText {
				t.Errorf("labelLayout = (%d, %q), want (%d, %q)", col, text, tt.wantCol, tt.wantText)
			}
		})
	}
}

func TestLabelLayoutNarrow(t *testing.T) {
	col, _ := labelLayout("Bounce", 0, 4)
	if col != 0 {
		t.Errorf("col = %d, want 0 when the label does not fit", col)
	}
}

func TestListContent(t *testing.T) {
	got := listContent(3)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0] != " Item0" || lines[2] != " Item2" {
		t.Errorf("lines = %q", lines)
	}
}
