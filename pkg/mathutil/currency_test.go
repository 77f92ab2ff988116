package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{1.005, 1.0},
		{1.006, 1.01},
		{534.834999, 534.83},
		{-2.675, -2.67},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round(tt.input); got != tt.expected {
			t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		input    float64
		expected bool
	}{
		{0, true},
		{0.009, true},
		{-0.009, true},
		{0.011, false},
		{100, false},
	}

	for _, tt := range tests {
		if got := IsZero(tt.input); got != tt.expected {
			t.Errorf("IsZero(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.0, 100.005, 0.01) {
		t.Error("expected 100.0 and 100.005 to be within 0.01")
	}
	if WithinTolerance(100.0, 100.02, 0.01) {
		t.Error("expected 100.0 and 100.02 to exceed 0.01")
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		value      float64
		percentage float64
		expected   float64
	}{
		{35000, 20, 7000},
		{35000, 3, 1050},
		{28000, 0, 0},
		{1000, 100, 1000},
	}

	for _, tt := range tests {
		if got := ApplyPercentage(tt.value, tt.percentage); math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, got, tt.expected)
		}
	}
}

func TestCompoundFactor(t *testing.T) {
	tests := []struct {
		rate     float64
		periods  int
		expected float64
	}{
		{-15, 1, 0.85},
		{-15, 2, 0.7225},
		{3, 4, 1.12550881},
		{12.5, 1, 1.125},
		{5, 0, 1.0},
	}

	for _, tt := range tests {
		if got := CompoundFactor(tt.rate, tt.periods); math.Abs(got-tt.expected) > 0.000001 {
			t.Errorf("CompoundFactor(%v, %d) = %v, expected %v", tt.rate, tt.periods, got, tt.expected)
		}
	}
}
