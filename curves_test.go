package bounce

import (
	"math"
	"testing"
)

func TestDragResistance(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{t: -1, want: 0},
		{t: 0, want: 0},
		{t: 1, want: 0.75},
		{t: 2, want: 1},
		{t: 3, want: 1},
	}
	for _, tt := range tests {
		if got := DragResistance(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DragResistance(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestDragResistanceMonotonic(t *testing.T) {
	prev := DragResistance(0)
	for i := 1; i <= 200; i++ {
		got := DragResistance(float64(i) / 100)
		if got < prev {
			t.Fatalf("DragResistance not monotonic at t=%v", float64(i)/100)
		}
		prev = got
	}
}

func TestSettleEase(t *testing.T) {
	if got := SettleEase(0); got != 0 {
		t.Errorf("SettleEase(0) = %v, want 0", got)
	}
	if got := SettleEase(1); got != 1 {
		t.Errorf("SettleEase(1) = %v, want 1", got)
	}
	if got := SettleEase(0.5); math.Abs(got-0.96875) > 1e-9 {
		t.Errorf("SettleEase(0.5) = %v, want 0.96875", got)
	}
}
