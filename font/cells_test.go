package font

import "testing"

func TestSplitCells(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		widths []int
		offs   []int
	}{
		{"ascii", "ab", []int{1, 1}, []int{0, 1}},
		{"wide", "a\u6f22b", []int{1, 2, 1}, []int{0, 1, 4}},
		{"combining", "e\u0301x", []int{1, 1}, []int{0, 3}},
		{"fullwidth", "\uFF21=", []int{2, 1}, []int{0, 3}},
		{"narrow kana", "\uFF76", []int{1}, []int{0}},
		{"emoji presentation", "\u2764\uFE0F", []int{2}, []int{0}},
		{"empty", "", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := SplitCells(tt.text)
			if len(cells) != len(tt.widths) {
				t.Fatalf("len = %d, want %d (%+v)", len(cells), len(tt.widths), cells)
			}
			for i, c := range cells {
				if c.Width != tt.widths[i] {
					t.Errorf("cell %d %q width = %d, want %d", i, c.Text, c.Width, tt.widths[i])
				}
				if c.Offset != tt.offs[i] {
					t.Errorf("cell %d offset = %d, want %d", i, c.Offset, tt.offs[i])
				}
			}
		})
	}
}
