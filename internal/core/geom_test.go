package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(10, 10), true},
		{"bottom-right corner", Pt(30, 25), true},
		{"right edge", Pt(30, 12), true},
		{"just past right edge", Pt(31, 12), false},
		{"just past bottom edge", Pt(12, 26), false},
		{"just before left edge", Pt(9, 12), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsInclusive(tc.p); got != tc.expected {
				t.Errorf("ContainsInclusive(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	outer := NewRect(0, 0, 100, 50)

	if !NewRect(0, 0, 100, 50).Within(outer) {
		t.Error("identical rect should be within")
	}
	if !NewRect(90, 40, 10, 10).Within(outer) {
		t.Error("rect touching bottom-right should be within")
	}
	if NewRect(91, 40, 10, 10).Within(outer) {
		t.Error("rect overflowing right edge should not be within")
	}
	if NewRect(-1, 0, 10, 10).Within(outer) {
		t.Error("rect overflowing left edge should not be within")
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
	if r.Size() != (Size{W: 20, H: 15}) {
		t.Errorf("Size() = %v, expected 20x15", r.Size())
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(10, -2)

	if got := a.Add(b); got != Pt(13, 2) {
		t.Errorf("Add() = %v, expected (13, 2)", got)
	}
	if got := b.Sub(a); got != Pt(7, -6) {
		t.Errorf("Sub() = %v, expected (7, -6)", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
