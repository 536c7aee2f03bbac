package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewRect(0, 0, 30, 10),
			b:        NewRect(25, 5, 10, 10),
			expected: true,
		},
		{
			name:     "apart horizontally",
			a:        NewRect(0, 0, 30, 10),
			b:        NewRect(40, 0, 10, 10),
			expected: false,
		},
		{
			name:     "apart vertically",
			a:        NewRect(0, 0, 30, 10),
			b:        NewRect(0, 20, 30, 10),
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        NewRect(0, 0, 30, 10),
			b:        NewRect(30, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewRect(0, 0, 30, 10),
			b:        NewRect(0, 10, 30, 10),
			expected: false,
		},
		{
			name:     "ball inside brick",
			a:        NewRect(0, 0, 30, 10),
			b:        RectAround(15, 5, 2),
			expected: true,
		},
		{
			name:     "one pixel corner",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(100, 50, 5)
	if r.X != 95 || r.Y != 45 || r.W != 10 || r.H != 10 {
		t.Errorf("RectAround(100, 50, 5) = %+v, expected {95 45 10 10}", r)
	}
}

func TestRectPenetration(t *testing.T) {
	brick := NewRect(100, 40, 30, 10)

	tests := []struct {
		name   string
		ball   Rect
		dx, dy int
	}{
		{"entering from below", RectAround(115, 53, 5), 20, 2},
		{"entering from the left", RectAround(97, 45, 5), 2, 10},
		{"entering from the right", RectAround(133, 45, 5), 2, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.ball.Penetration(brick)
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Penetration() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 260, 5},
		{-10, 0, 260, 0},
		{270, 0, 260, 260},
		{0, 0, 260, 0},
		{260, 0, 260, 260},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs should drop the sign")
	}
}
