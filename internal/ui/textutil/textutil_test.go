package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"Comercio Electrónico", 10, "Comercio …"},
		{"日本語テキスト", 5, "日本…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if got := VisualWidth(Truncate(tt.in, tt.width)); got > tt.width && tt.width > 0 {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.width, got)
		}
	}
}

func TestVisualWidth(t *testing.T) {
	if got := VisualWidth("日本"); got != 2*2 {
		t.Errorf("VisualWidth(日本) = %d, want 4", got)
	}
	if got := VisualWidthStyled("\x1b[1mbold\x1b[0m"); got != 4 {
		t.Errorf("VisualWidthStyled = %d, want 4", got)
	}
}

func TestSpaces(t *testing.T) {
	if Spaces(-1) != "" || Spaces(0) != "" {
		t.Error("non-positive counts give empty string")
	}
	if Spaces(3) != "   " {
		t.Errorf("Spaces(3) = %q", Spaces(3))
	}
}
