package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestVec3_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6)), NewVec3(5, 7, 9)},
		{"subtract", NewVec3(4, 5, 6).Subtract(NewVec3(1, 2, 3)), NewVec3(3, 3, 3)},
		{"multiply", NewVec3(1, -2, 3).Multiply(2), NewVec3(2, -4, 6)},
		{"multiply vec", NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 0, -1)), NewVec3(2, 0, -3)},
		{"negate", NewVec3(1, -2, 3).Negate(), NewVec3(-1, 2, -3)},
		{"abs", NewVec3(-1, 2, -3).Abs(), NewVec3(1, 2, 3)},
		{"cross x cross y", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"max vec", NewVec3(1, 5, -2).MaxVec(NewVec3(3, 4, 0)), NewVec3(3, 5, 0)},
		{"clamp", NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_LengthAndNormalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	if math.Abs(v.Length()-5) > tolerance {
		t.Errorf("Expected length 5, got %v", v.Length())
	}
	if math.Abs(v.LengthSquared()-25) > tolerance {
		t.Errorf("Expected squared length 25, got %v", v.LengthSquared())
	}

	n := v.Normalize()
	if math.Abs(n.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %v", n.Length())
	}
	if n.Subtract(NewVec3(0.6, 0.8, 0)).Length() > tolerance {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", n)
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero.Length() != 0 {
		t.Errorf("Expected the zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_Fract(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected Vec3
	}{
		{"positive", NewVec3(1.25, 2.5, 3.75), NewVec3(0.25, 0.5, 0.75)},
		{"negative wraps up", NewVec3(-0.25, -1.5, -2.75), NewVec3(0.75, 0.5, 0.25)},
		{"integers", NewVec3(1, -2, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.input.Fract()
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if result.MinComponent() < 0 || result.MaxComponent() >= 1 {
				t.Errorf("Fract left the [0,1) range: %v", result)
			}
		})
	}
}

func TestVec3_Components(t *testing.T) {
	v := NewVec3(2, -7, 4)
	if v.MaxComponent() != 4 {
		t.Errorf("Expected max component 4, got %v", v.MaxComponent())
	}
	if v.MinComponent() != -7 {
		t.Errorf("Expected min component -7, got %v", v.MinComponent())
	}
	if got := v.Dot(NewVec3(1, 1, 1)); math.Abs(got+1) > tolerance {
		t.Errorf("Expected dot product -1, got %v", got)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1, 0).GammaCorrect(2.0)
	if math.Abs(v.X-0.5) > tolerance {
		t.Errorf("Expected 0.25 to gamma-correct to 0.5, got %v", v.X)
	}
	if v.Y != 1 || v.Z != 0 {
		t.Errorf("Expected 1 and 0 to be fixed points, got %v", v)
	}
}
