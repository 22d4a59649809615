package frame

import (
	"math"
	"testing"
)

func TestDiffScore(t *testing.T) {
	tests := []struct {
		name   string
		valueA float64
		valueB float64
		want   float64
	}{
		{name: "identical frames", valueA: 0, valueB: 0, want: 0},
		{name: "black to white", valueA: 0, valueB: 255, want: 100},
		{name: "black to mid gray", valueA: 0, valueB: 128, want: 128 * 100.0 / 255.0},
		{name: "small drift", valueA: 100, valueB: 113, want: 13 * 100.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newUniformFrame(t, 0, 8, 8, tt.valueA)
			b := newUniformFrame(t, 1, 8, 8, tt.valueB)

			got, err := DiffScore(a, b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("DiffScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiffScore_Symmetric(t *testing.T) {
	a := newUniformFrame(t, 0, 8, 8, 30)
	b := newUniformFrame(t, 1, 8, 8, 200)

	forward, err := DiffScore(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backward, err := DiffScore(b, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if forward != backward {
		t.Errorf("DiffScore(a, b) = %v, DiffScore(b, a) = %v, want equal", forward, backward)
	}
}

func TestDiffScore_AcceptsGrayInputs(t *testing.T) {
	a := newGrayFrame(t, 0, 8, 8, 0)
	b := newGrayFrame(t, 1, 8, 8, 255)

	got, err := DiffScore(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-100) > 0.01 {
		t.Errorf("DiffScore() = %v, want 100", got)
	}
}

func TestDiffScore_DimensionMismatch(t *testing.T) {
	a := newUniformFrame(t, 0, 4, 4, 0)
	b := newUniformFrame(t, 1, 8, 8, 0)

	if _, err := DiffScore(a, b); err == nil {
		t.Fatal("expected error for mismatched dimensions, got nil")
	}
}

func TestDiffScore_ChannelMismatch(t *testing.T) {
	a := newUniformFrame(t, 0, 4, 4, 0)
	b := newGrayFrame(t, 1, 4, 4, 0)

	if _, err := DiffScore(a, b); err == nil {
		t.Fatal("expected error for mismatched channels, got nil")
	}
}
