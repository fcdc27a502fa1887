package vmath

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestNormalizeZeroSafe(t *testing.T) {
	if got := Zero.Normalize(); !got.IsZero() {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}

	v := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Mag()-1) > eps {
		t.Errorf("normalized magnitude = %v, want 1", v.Mag())
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name    string
		v       Vec2
		max     float64
		wantMag float64
	}{
		{"under limit unchanged", Vec2{X: 1, Y: 0}, 5, 1},
		{"over limit clamped", Vec2{X: 30, Y: 40}, 10, 10},
		{"zero stays zero", Zero, 10, 0},
		{"exact limit unchanged", Vec2{X: 0, Y: 2}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Limit(tt.max)
			if math.Abs(got.Mag()-tt.wantMag) > 1e-9 {
				t.Errorf("Limit(%v, %v).Mag() = %v, want %v", tt.v, tt.max, got.Mag(), tt.wantMag)
			}
			// Direction preserved
			if !tt.v.IsZero() && got.Normalize().Dot(tt.v.Normalize()) < 1-1e-9 {
				t.Errorf("Limit changed direction: %v -> %v", tt.v, got)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if math.Abs(v.X) > eps || math.Abs(v.Y-1) > eps {
		t.Errorf("Rotate 90° = %v, want (0,1)", v)
	}
}

func TestPerpendicular(t *testing.T) {
	v := Vec2{X: 3, Y: 2}
	p := v.Perpendicular()
	if math.Abs(v.Dot(p)) > eps {
		t.Errorf("Perpendicular not orthogonal: %v . %v = %v", v, p, v.Dot(p))
	}
	if math.Abs(p.Mag()-v.Mag()) > eps {
		t.Errorf("Perpendicular changed magnitude: %v -> %v", v.Mag(), p.Mag())
	}
}

func TestHeadingFromAngleRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 3, -math.Pi / 4, math.Pi} {
		got := FromAngle(angle).Heading()
		if math.Abs(got-angle) > 1e-9 {
			t.Errorf("Heading(FromAngle(%v)) = %v", angle, got)
		}
	}
}

func TestDist(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 4, Y: 6}
	if d := a.Dist(b); math.Abs(d-5) > eps {
		t.Errorf("Dist = %v, want 5", d)
	}
	if d := a.DistSq(b); math.Abs(d-25) > eps {
		t.Errorf("DistSq = %v, want 25", d)
	}
}

func TestClampMap(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp = %v, want 3", got)
	}
	if got := Map(0.5, 0, 1, 0, 100); got != 50 {
		t.Errorf("Map = %v, want 50", got)
	}
	if got := Map(1, 2, 2, 7, 9); got != 7 {
		t.Errorf("Map degenerate input range = %v, want 7", got)
	}
}
