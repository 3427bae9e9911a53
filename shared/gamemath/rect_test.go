package gamemath

import "testing"

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", NewRect(0, 0, 32, 32), NewRect(16, 16, 32, 32), true},
		{"contained", NewRect(0, 0, 64, 64), NewRect(16, 16, 8, 8), true},
		{"apart", NewRect(0, 0, 32, 32), NewRect(64, 64, 32, 32), false},
		{"touching right edge", NewRect(0, 0, 32, 32), NewRect(32, 0, 32, 32), false},
		{"touching bottom edge", NewRect(0, 0, 32, 32), NewRect(0, 32, 32, 32), false},
		{"touching corner", NewRect(0, 0, 32, 32), NewRect(32, 32, 32, 32), false},
		{"zero width", NewRect(10, 10, 0, 32), NewRect(0, 0, 32, 64), false},
		{"sub-pixel overlap", NewRect(0, 0, 32, 32), NewRect(31.5, 0, 32, 32), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestIntersectionRegion(t *testing.T) {
	got, ok := Intersection(NewRect(0, 0, 32, 32), NewRect(16, 8, 32, 32))
	if !ok {
		t.Fatal("expected an intersection")
	}
	want := NewRect(16, 8, 16, 24)
	if got != want {
		t.Errorf("Intersection = %v, want %v", got, want)
	}
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir    Direction
		vx, vy float64
	}{
		{North, 0, -1},
		{East, 1, 0},
		{South, 0, 1},
		{West, -1, 0},
	}
	for _, tt := range tests {
		vx, vy := tt.dir.Vector()
		if vx != tt.vx || vy != tt.vy {
			t.Errorf("%v.Vector() = (%v, %v), want (%v, %v)", tt.dir, vx, vy, tt.vx, tt.vy)
		}
		if tt.dir.Opposite().Opposite() != tt.dir {
			t.Errorf("%v.Opposite() is not an involution", tt.dir)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"south", "SOUTH", "s", " South "} {
		d, err := ParseDirection(in)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", in, err)
		}
		if d != South {
			t.Errorf("ParseDirection(%q) = %v, want south", in, d)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
