package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FaceMeasurer measures text using golang.org/x/image font faces. Faces are
// registered per family name; Style.Family selects among them. The face
// determines glyph size and line height, so Style.Size is not consulted.
//
// Measurement results depend only on the registered faces and the inputs,
// so a FaceMeasurer is safe to share across layout passes.
type FaceMeasurer struct {
	faces    map[string]font.Face
	fallback font.Face
}

// NewFaceMeasurer returns a measurer that uses fallback for any family
// without a registered face.
func NewFaceMeasurer(fallback font.Face) *FaceMeasurer {
	return &FaceMeasurer{
		faces:    make(map[string]font.Face),
		fallback: fallback,
	}
}

// Register associates a face with a family name.
func (m *FaceMeasurer) Register(family string, face font.Face) {
	m.faces[family] = face
}

func (m *FaceMeasurer) face(style Style) font.Face {
	if f, ok := m.faces[style.Family]; ok {
		return f
	}
	return m.fallback
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(content string, style Style, wrapWidth float32) Metrics {
	face := m.face(style)
	widthOf := func(s string) float32 {
		return fixedToPx(font.MeasureString(face, s))
	}

	lineHeight := fixedToPx(face.Metrics().Height)
	if wrapWidth <= 0 {
		wrapWidth = Unwrapped
	}
	lines := WrapLines(content, wrapWidth, widthOf)
	return Metrics{
		Width:  widest(lines, widthOf),
		Height: lineHeight * float32(len(lines)),
	}
}

// MinWidth implements Measurer.
func (m *FaceMeasurer) MinWidth(content string, style Style) float32 {
	face := m.face(style)
	return longestSegment(content, func(s string) float32 {
		return fixedToPx(font.MeasureString(face, s))
	})
}

func fixedToPx(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
