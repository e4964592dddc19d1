package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	texture := NewSolidColor(core.NewVec3(0.8, 0.8, 0.8))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(texture, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectMirror(t *testing.T) {
	metal := NewMetal(NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)), 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	scatter, ok := metal.ScatterReflective(rayIn, hit, sampler)
	if !ok {
		t.Fatal("Mirror should scatter")
	}

	expected := core.NewVec3(0, 1, 0)
	const tolerance = 1e-10
	if scatter.Ray.Direction.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected direction %v, got %v", expected, scatter.Ray.Direction)
	}
	if !scatter.Ray.Origin.Equals(hit.Point) {
		t.Errorf("Expected origin %v, got %v", hit.Point, scatter.Ray.Origin)
	}
	if scatter.Weight != 1.0 {
		t.Errorf("Expected weight 1, got %f", scatter.Weight)
	}
}

func TestMetal_FuzzyReflectionStaysAboveSurface(t *testing.T) {
	metal := NewMetal(NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)), 1.0)
	rayIn := core.NewRay(core.NewVec3(-1, 0.1, 0), core.NewVec3(1, -0.1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	absorbed := 0
	for seed := int64(0); seed < 200; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		scatter, ok := metal.ScatterReflective(rayIn, hit, sampler)
		if !ok {
			absorbed++
			continue
		}
		if scatter.Ray.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Seed %d: scattered direction %v points into the surface", seed, scatter.Ray.Direction)
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing fuzzy reflections to be absorbed")
	}
}
