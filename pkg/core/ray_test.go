package core

import (
	"errors"
	"math"
	"testing"
)

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -1))

	if got := ray.At(0); got != NewVec3(1, 0, 0) {
		t.Errorf("At(0): expected origin, got %v", got)
	}
	if got := ray.At(2); got != NewVec3(1, 0, -2) {
		t.Errorf("At(2): expected (1,0,-2), got %v", got)
	}
}

func TestRay_Validate(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		wantErr   bool
	}{
		{"unit axis", NewVec3(0, 0, -1), false},
		{"normalized diagonal", NewVec3(1, 1, 1).Normalize(), false},
		{"zero direction", NewVec3(0, 0, 0), true},
		{"non-unit direction", NewVec3(0, 0, -2), true},
		{"NaN direction", NewVec3(math.NaN(), 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(NewVec3(0, 0, 0), tt.direction)
			err := ray.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				if !errors.Is(err, ErrInvalidRay) {
					t.Errorf("Expected ErrInvalidRay, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected valid ray, got error %v", err)
			}
		})
	}
}
