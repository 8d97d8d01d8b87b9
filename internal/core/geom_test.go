package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 12, 24)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 5, 5, true},
		{"top-left corner", 0, 0, true},
		{"last cell", 11, 23, true},
		{"right edge (exclusive)", 12, 5, false},
		{"bottom edge (exclusive)", 5, 24, false},
		{"negative column", -1, 5, false},
		{"above the board", 5, -1, false},
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

func TestPointAdd(t *testing.T) {
	p := Point{X: 2, Y: -1}.Add(3, 4)
	if p != (Point{X: 5, Y: 3}) {
		t.Errorf("Add() = %v, expected {5 3}", p)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 20)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 23 {
		t.Errorf("Bottom() = %d, expected 23", r.Bottom())
	}
}
