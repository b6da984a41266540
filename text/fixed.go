package text

// FixedMeasurer measures text with a constant per-rune advance and line
// height. It exists for tests and tooling that need bit-identical metrics
// without loading a font; the CLI inspector uses it as well.
type FixedMeasurer struct {
	// Advance is the width of every rune in pixels.
	Advance float32

	// LineHeight is the height of a single line in pixels.
	LineHeight float32
}

// Measure implements Measurer.
func (m FixedMeasurer) Measure(content string, style Style, wrapWidth float32) Metrics {
	widthOf := m.widthOf

	if wrapWidth <= 0 {
		wrapWidth = Unwrapped
	}
	lines := WrapLines(content, wrapWidth, widthOf)
	return Metrics{
		Width:  widest(lines, widthOf),
		Height: m.LineHeight * float32(len(lines)),
	}
}

// MinWidth implements Measurer.
func (m FixedMeasurer) MinWidth(content string, style Style) float32 {
	return longestSegment(content, m.widthOf)
}

func (m FixedMeasurer) widthOf(s string) float32 {
	n := 0
	for range s {
		n++
	}
	return m.Advance * float32(n)
}
