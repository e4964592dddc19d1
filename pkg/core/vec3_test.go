package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "Axis aligned",
			vector:   NewVec3(0, 3, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "Diagonal",
			vector:   NewVec3(1, 1, 0),
			expected: NewVec3(1/math.Sqrt2, 1/math.Sqrt2, 0),
		},
		{
			name:     "Zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); !got.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
	if got := y.Cross(x); !got.Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Expected y cross x = -z, got %v", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-7, 0).NearZero() {
		t.Error("Expected vector with one 1e-7 component not to be near zero")
	}
}

func TestReflect(t *testing.T) {
	incoming := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	result := Reflect(incoming, normal)
	expected := NewVec3(1, 1, 0).Normalize()

	const tolerance = 1e-9
	if result.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestRefract_UnitRatioPassesThrough(t *testing.T) {
	incoming := NewVec3(0.3, -1, 0.2).Normalize()
	normal := NewVec3(0, 1, 0)

	result := Refract(incoming, normal, 1.0)

	const tolerance = 1e-9
	if result.Subtract(incoming).Length() > tolerance {
		t.Errorf("Expected unchanged direction %v, got %v", incoming, result)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if got := ray.At(1.5); !got.Equals(NewVec3(1, 2, 0)) {
		t.Errorf("Expected (1,2,0), got %v", got)
	}
}
