// Package text provides the text measurement collaborator consumed by the
// layout engine. Layout treats measurement as a pure function of (content,
// style, wrap width); the engine never learns about glyphs or shaping.
package text

import (
	"math"
	"strings"
	"unicode"
)

// Unwrapped is a wrap width that never forces a soft break.
const Unwrapped = float32(math.MaxFloat32)

// Style describes the font properties relevant to measurement.
type Style struct {
	// Family selects a registered face by name. Empty selects the
	// measurer's default face.
	Family string

	// Size is the nominal font size in pixels. Measurers backed by a
	// concrete font.Face derive metrics from the face and may ignore it.
	Size float32
}

// Metrics is a measured text extent in pixels.
type Metrics struct {
	Width  float32
	Height float32
}

// Measurer measures text. Implementations must be pure with respect to
// their inputs: the same (content, style, wrapWidth) always yields the same
// metrics within a layout pass. Implementations may cache internally.
//
// A Measurer must never mutate the widget tree it is measuring for; the
// layout engine rejects a pass during which that happens.
type Measurer interface {
	// Measure returns the extent of content at the given wrap width.
	// A wrapWidth <= 0 measures unwrapped natural lines (explicit
	// newlines still break).
	Measure(content string, style Style, wrapWidth float32) Metrics

	// MinWidth returns the narrowest wrap width that does not split a
	// word: the width of the longest unbreakable segment.
	MinWidth(content string, style Style) float32
}

// WrapLines breaks content into lines no wider than maxWidth, measuring
// candidate lines with widthOf. Breaks happen at the last space before
// overflow; a single word wider than maxWidth is placed on its own line
// rather than split. Explicit newlines always break. The result has at
// least one (possibly empty) line.
func WrapLines(content string, maxWidth float32, widthOf func(string) float32) []string {
	if content == "" {
		return []string{""}
	}

	var lines []string
	for _, paragraph := range strings.Split(content, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, widthOf)...)
	}
	return lines
}

func wrapParagraph(s string, maxWidth float32, widthOf func(string) float32) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if widthOf(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// longestSegment returns the widest unbreakable run in content.
func longestSegment(content string, widthOf func(string) float32) float32 {
	var widest float32
	for _, field := range strings.FieldsFunc(content, unicode.IsSpace) {
		if w := widthOf(field); w > widest {
			widest = w
		}
	}
	return widest
}

// widest returns the width of the widest line.
func widest(lines []string, widthOf func(string) float32) float32 {
	var w float32
	for _, line := range lines {
		if lw := widthOf(line); lw > w {
			w = lw
		}
	}
	return w
}
