package text

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFaceMeasurerBasicFont(t *testing.T) {
	m := NewFaceMeasurer(basicfont.Face7x13)

	one := m.Measure("a", Style{}, Unwrapped)
	two := m.Measure("aa", Style{}, Unwrapped)
	if two.Width != 2*one.Width {
		t.Errorf("advance not uniform: %v then %v", one.Width, two.Width)
	}
	if one.Height <= 0 {
		t.Errorf("line height = %v, want > 0", one.Height)
	}

	// Wrapping at MinWidth keeps each word on its own line.
	content := "alpha beta gamma"
	mw := m.MinWidth(content, Style{})
	wrapped := m.Measure(content, Style{}, mw)
	if wrapped.Width != mw {
		t.Errorf("wrapped width = %v, want %v", wrapped.Width, mw)
	}
	if wrapped.Height != 3*one.Height {
		t.Errorf("wrapped height = %v, want three lines (%v)", wrapped.Height, 3*one.Height)
	}
}

func TestFaceMeasurerFamilySelection(t *testing.T) {
	m := NewFaceMeasurer(basicfont.Face7x13)
	m.Register("mono", basicfont.Face7x13)

	named := m.Measure("hello", Style{Family: "mono"}, Unwrapped)
	fallback := m.Measure("hello", Style{Family: "unregistered"}, Unwrapped)
	if named != fallback {
		t.Errorf("same face should measure the same: %+v vs %+v", named, fallback)
	}
}
