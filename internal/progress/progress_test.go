package progress

import (
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		index, total int
		want         float64
	}{
		{0, 22, 1.0 / 22},
		{21, 22, 1.0},
		{0, 1, 1.0},
		{1, 4, 0.5},
		{0, 0, 0},
	}
	for _, tt := range tests {
		got := Of(tt.index, tt.total).Ratio()
		if got != tt.want {
			t.Errorf("Of(%d, %d).Ratio() = %v, want %v", tt.index, tt.total, got, tt.want)
		}
	}
}

func TestRatio_FirstSlideOfTwentyTwo(t *testing.T) {
	got := Of(0, 22).Ratio()
	if got < 0.0454 || got > 0.0455 {
		t.Errorf("expected ~0.0455, got %v", got)
	}
}

func TestLabel(t *testing.T) {
	if got := Of(0, 22).Label(); got != "1 / 22" {
		t.Errorf("Label: expected '1 / 22', got %q", got)
	}
	if got := Of(21, 22).Label(); got != "22 / 22" {
		t.Errorf("Label: expected '22 / 22', got %q", got)
	}
}

func TestControlsEnabled(t *testing.T) {
	tests := []struct {
		index, total int
		prev, next   bool
	}{
		{0, 22, false, true},
		{5, 22, true, true},
		{21, 22, true, false},
		{0, 1, false, false},
	}
	for _, tt := range tests {
		p := Of(tt.index, tt.total)
		if p.PrevEnabled() != tt.prev {
			t.Errorf("Of(%d, %d).PrevEnabled() = %v, want %v", tt.index, tt.total, p.PrevEnabled(), tt.prev)
		}
		if p.NextEnabled() != tt.next {
			t.Errorf("Of(%d, %d).NextEnabled() = %v, want %v", tt.index, tt.total, p.NextEnabled(), tt.next)
		}
	}
}
