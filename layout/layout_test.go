package layout

import (
	"testing"

	"github.com/quiltui/quilt"
	"github.com/quiltui/quilt/text"
)

// All layout tests measure text with a 10px advance and 10px line height
// so expected geometry stays round.
func newTestEngine(tree *quilt.Tree) *Engine {
	return New(tree, text.FixedMeasurer{Advance: 10, LineHeight: 10}, DefaultConfig())
}

func testStyle() text.Style {
	return text.Style{Family: "test", Size: 10}
}

func approx(a, b float32) bool {
	d := a - b
	return d >= -Tolerance && d <= Tolerance
}

func rectEq(a, b Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) &&
		approx(a.Width, b.Width) && approx(a.Height, b.Height)
}

func wantRect(t *testing.T, e *Engine, w *quilt.Widget, want Rect) {
	t.Helper()
	got, ok := e.Rect(w.ID())
	if !ok {
		t.Fatalf("%s %d has no committed rect", w.Kind(), w.ID())
	}
	if !rectEq(got, want) {
		t.Errorf("%s %d rect = %s, want %s", w.Kind(), w.ID(), got, want)
	}
}

func mustLayout(t *testing.T, e *Engine, viewport Rect) {
	t.Helper()
	if err := e.Layout(viewport); err != nil {
		t.Fatalf("Layout() failed: %v", err)
	}
}
