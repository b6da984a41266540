package layout

import (
	"github.com/quiltui/quilt"
)

// apply commits a final rect for the widget given its allotted rect,
// recursing through containers. Whatever a subtree computes, its
// committed rect never escapes the allotted rect: overflow is clamped
// and reported through the hooks, not propagated.
func (e *Engine) apply(w *quilt.Widget, allotted Rect, depth int) (Rect, error) {
	if depth > e.cfg.MaxDepth {
		e.hooks.DepthExceeded(w.ID(), depth)
		e.logger.Error("widget tree too deep", "widget", w.ID(), "depth", depth)
		return Rect{}, &LayoutError{Kind: DepthExceeded, Widget: w.ID(), Depth: depth}
	}
	// Declared extents carve the widget's own box out of the allotted
	// slot before anything inside it is placed, aligned within the slot
	// when smaller. Children distribute within the declared box, never
	// the full slot.
	box := allotted
	declW, okW := w.Size().W.Resolve(allotted.Width, e.rootSize.X)
	if okW {
		box.Width = declW
		box.X = allotted.X + w.AlignX().Offset(allotted.Width, declW)
	}
	declH, okH := w.Size().H.Resolve(allotted.Height, e.rootSize.Y)
	if okH {
		box.Height = declH
		box.Y = allotted.Y + w.AlignY().Offset(allotted.Height, declH)
	}

	var final Rect
	var err error
	if w.Kind().Container() {
		// Strategies place children inside the padding box and report a
		// content-box rect; padding is added back around it.
		inner := box.Inset(w.Padding())
		switch w.Kind() {
		case quilt.KindFlow:
			final, err = e.applyFlow(w, inner, depth)
		case quilt.KindStack:
			final, err = e.applyStack(w, inner, depth)
		default:
			final, err = e.applyFloat(w, inner, depth)
		}
		final = final.Outset(w.Padding())
	} else {
		// Leaf sizing already accounts for the widget's own padding.
		final, err = e.applyLeaf(w, box, depth)
	}
	if err != nil {
		return Rect{}, err
	}

	// A declared extent overrides whatever the strategy produced.
	if okW {
		final.X, final.Width = box.X, box.Width
	}
	if okH {
		final.Y, final.Height = box.Y, box.Height
	}

	if !allotted.Contains(final) {
		e.hooks.OversizedApply(w.ID(), final, allotted)
		e.logger.Warn("subtree exceeded allotted rect",
			"widget", w.ID(), "kind", w.Kind(), "got", final, "allotted", allotted)
		final = final.Intersect(allotted)
	}

	rec := &e.records[w.ID()]
	rec.rect = final
	rec.hasRect = true
	return final, nil
}

// applyLeaf sizes a leaf against its resolved inner rect and aligns it.
// The sizing goes through the memoized query so a leaf whose slot did
// not move between passes costs no measurement; a slot that differs
// from what the sizing stage saw is the one permitted re-query.
func (e *Engine) applyLeaf(w *quilt.Widget, inner Rect, depth int) (Rect, error) {
	s, err := e.query(w, inner.Size(), Squeeze{}, depth)
	if err != nil {
		return Rect{}, err
	}
	size := s.Preferred.Min(inner.Size())
	x := inner.X + w.AlignX().Offset(inner.Width, size.X)
	y := inner.Y + w.AlignY().Offset(inner.Height, size.Y)
	return RectOf(x, y, size.X, size.Y), nil
}

