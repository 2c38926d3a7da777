package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Cross: expected (0,0,1), got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()

	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %v", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-9 || math.Abs(v.Y-0.8) > 1e-9 {
		t.Errorf("Expected (0.6,0.8,0), got %v", v)
	}

	// Zero vector normalizes to zero rather than NaN
	if got := NewVec3(0, 0, 0).Normalize(); got != NewVec3(0, 0, 0) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if v != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0,0.5,1), got %v", v)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"start", 0.0, NewVec3(0, 0, 0)},
		{"midpoint", 0.5, NewVec3(1, 2, 3)},
		{"end", 1.0, NewVec3(2, 4, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Lerp(b, tt.t)
			if math.Abs(got.X-tt.expected.X) > 1e-9 ||
				math.Abs(got.Y-tt.expected.Y) > 1e-9 ||
				math.Abs(got.Z-tt.expected.Z) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"finite", NewVec3(1, 2, 3), true},
		{"zero", NewVec3(0, 0, 0), true},
		{"NaN component", NewVec3(math.NaN(), 0, 0), false},
		{"positive Inf", NewVec3(0, math.Inf(1), 0), false},
		{"negative Inf", NewVec3(0, 0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}
