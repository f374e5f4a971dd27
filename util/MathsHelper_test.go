package util

import (
	"math"
	"testing"
)

func TestMax(t *testing.T) {
	if Max(1, 2, 3) != 3 {
		t.Error("Max(1,2,3) should be 3")
	}
	if Max(3, 2, 1) != 3 {
		t.Error("Max(3,2,1) should be 3")
	}
	if Max(-1, -2, -3) != -1 {
		t.Error("Max(-1,-2,-3) should be -1")
	}
	if Max(1.5, 2.5, 0.5) != 2.5 {
		t.Error("Max(1.5,2.5,0.5) should be 2.5")
	}
}

func TestMaxEmpty(t *testing.T) {
	result := Max[float64]()
	if result != 0 {
		t.Errorf("Max() should return zero value, got %f", result)
	}
}

func TestMaxNaN(t *testing.T) {
	nan := math.NaN()
	result := Max(nan, 1.0, 2.0)
	if !math.IsNaN(result) {
		t.Error("Max with NaN first should return NaN")
	}
	result = Max(1.0, nan, 2.0)
	if !math.IsNaN(result) {
		t.Error("Max with NaN in middle should return NaN")
	}
}

func TestMin(t *testing.T) {
	if Min(1, 2, 3) != 1 {
		t.Error("Min(1,2,3) should be 1")
	}
	if Min(-1, -2, -3) != -3 {
		t.Error("Min(-1,-2,-3) should be -3")
	}
	if Min(5) != 5 {
		t.Error("Min(5) should be 5")
	}
}

func TestMinNaN(t *testing.T) {
	nan := math.NaN()
	result := Min(nan, 1.0, 2.0)
	if !math.IsNaN(result) {
		t.Error("Min with NaN first should return NaN")
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t  float64
		expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-2, 2, 0.25, -1},
	}

	for _, tt := range tests {
		result := Lerp(tt.a, tt.b, tt.t)
		if math.Abs(result-tt.expected) > 1e-12 {
			t.Errorf("Lerp(%f, %f, %f) = %f; want %f", tt.a, tt.b, tt.t, result, tt.expected)
		}
	}
}
