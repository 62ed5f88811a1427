package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even fit", NewRect(0, 0, 20, 10), 10, 4, NewRect(5, 3, 10, 4)},
		{"odd remainder rounds down", NewRect(0, 0, 21, 11), 10, 4, NewRect(5, 3, 10, 4)},
		{"offset outer", NewRect(10, 10, 20, 10), 10, 4, NewRect(15, 13, 10, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.outer.Centered(tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("Centered() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name               string
		val, min, max, exp float64
	}{
		{"inside", 5.5, 0.0, 10.0, 5.5},
		{"below", -5.5, 0.0, 10.0, 0.0},
		{"above", 15.5, 0.0, 10.0, 10.0},
		// A level narrower than the viewport yields max < min; the camera pins to 0.
		{"inverted bounds", 40, 0, -80, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ClampF(tc.val, tc.min, tc.max)
			if result != tc.exp {
				t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.exp)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
