package layout

import (
	"github.com/quiltui/quilt"
	"github.com/quiltui/quilt/text"
	"github.com/quiltui/quilt/unit"
)

// query computes the widget's min and preferred size for the given
// content area and squeeze bias. Results are memoized per squeeze
// combination; a hit returns without touching the subtree.
func (e *Engine) query(w *quilt.Widget, content Point, sq Squeeze, depth int) (Sizing, error) {
	if depth > e.cfg.MaxDepth {
		e.hooks.DepthExceeded(w.ID(), depth)
		e.logger.Error("widget tree too deep", "widget", w.ID(), "depth", depth)
		return Sizing{}, &LayoutError{Kind: DepthExceeded, Widget: w.ID(), Depth: depth}
	}
	rec := &e.records[w.ID()]
	if s, ok := rec.lookup(sq, content); ok {
		return s, nil
	}

	// A declared extent replaces the inherited content area on that
	// axis before children see it.
	childArea := content
	declW, okW := w.Size().W.Resolve(content.X, e.rootSize.X)
	if okW {
		childArea.X = declW
	}
	declH, okH := w.Size().H.Resolve(content.Y, e.rootSize.Y)
	if okH {
		childArea.Y = declH
	}

	pad := w.Padding()
	inner := Point{
		X: insetExtent(childArea.X, pad.Horizontal()),
		Y: insetExtent(childArea.Y, pad.Vertical()),
	}

	var s Sizing
	var err error
	switch w.Kind() {
	case quilt.KindFlow:
		s, err = e.queryFlow(w, inner, depth)
	case quilt.KindStack:
		s, err = e.queryStack(w, inner, sq, depth)
	case quilt.KindFloat:
		s, err = e.queryFloat(w, inner, sq, depth)
	case quilt.KindText:
		s = e.queryText(w, inner, sq)
	default:
		// Plain boxes have no intrinsic content.
	}
	if err != nil {
		return Sizing{}, err
	}

	padSize := Point{pad.Horizontal(), pad.Vertical()}
	s.Min = s.Min.Add(padSize)
	s.Preferred = s.Preferred.Add(padSize)

	// Declared extents pin both bounds on their axis.
	if okW {
		s.Min.X, s.Preferred.X = declW, declW
	}
	if okH {
		s.Min.Y, s.Preferred.Y = declH, declH
	}
	s = e.clampDeclared(w, s, content)

	// Min never exceeds preferred; squeeze-forced growth on one axis
	// raises preferred instead of breaking the ordering.
	s.Preferred = s.Preferred.Max(s.Min)

	rec.store(sq, content, s)
	return s, nil
}

// clampDeclared applies the widget's declared min and max size bounds.
func (e *Engine) clampDeclared(w *quilt.Widget, s Sizing, content Point) Sizing {
	if v, ok := w.MinSize().W.Resolve(content.X, e.rootSize.X); ok {
		s.Min.X = max(s.Min.X, v)
		s.Preferred.X = max(s.Preferred.X, v)
	}
	if v, ok := w.MinSize().H.Resolve(content.Y, e.rootSize.Y); ok {
		s.Min.Y = max(s.Min.Y, v)
		s.Preferred.Y = max(s.Preferred.Y, v)
	}
	if v, ok := w.MaxSize().W.Resolve(content.X, e.rootSize.X); ok {
		s.Min.X = min(s.Min.X, v)
		s.Preferred.X = min(s.Preferred.X, v)
	}
	if v, ok := w.MaxSize().H.Resolve(content.Y, e.rootSize.Y); ok {
		s.Min.Y = min(s.Min.Y, v)
		s.Preferred.Y = min(s.Preferred.Y, v)
	}
	return s
}

// queryText sizes a text leaf through the measurer. Preferred is the
// natural single-paragraph size, wrapped down only when the content area
// is narrower. Squeezing the x axis wraps at the longest unbreakable
// word; squeezing only y keeps the text on as few lines as the content
// area allows.
func (e *Engine) queryText(w *quilt.Widget, inner Point, sq Squeeze) Sizing {
	content, style := w.Content(), w.Style()
	natural := e.measurer.Measure(content, style, text.Unwrapped)

	pref := natural
	if unit.Resolved(inner.X) && natural.Width > inner.X {
		pref = e.measurer.Measure(content, style, inner.X)
	}

	mn := pref
	if sq.X {
		mn = e.measurer.Measure(content, style, e.measurer.MinWidth(content, style))
	}

	return Sizing{
		Min:       Point{mn.Width, mn.Height},
		Preferred: Point{pref.Width, pref.Height},
	}
}

// marginSize is the total extent a child's margin adds around it.
func marginSize(c *quilt.Widget) Point {
	m := c.Margin()
	return Point{m.Horizontal(), m.Vertical()}
}

// insetExtent shrinks a content extent, preserving unresolved extents.
func insetExtent(extent, by float32) float32 {
	if !unit.Resolved(extent) {
		return extent
	}
	return max(extent-by, 0)
}
