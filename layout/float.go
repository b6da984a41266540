package layout

import (
	"github.com/quiltui/quilt"
)

// queryFloat sizes a float container by its anchor child alone. Floats
// are still queried so their caches are warm for apply, but their sizes
// do not contribute.
func (e *Engine) queryFloat(w *quilt.Widget, inner Point, sq Squeeze, depth int) (Sizing, error) {
	anchor := e.floatAnchor(w)
	var s Sizing
	for _, id := range w.Children() {
		c := e.tree.Widget(id)
		if c == nil {
			continue
		}
		cs, err := e.query(c, inner, sq, depth+1)
		if err != nil {
			return Sizing{}, err
		}
		if id == anchor {
			m := marginSize(c)
			s.Min = cs.Min.Add(m)
			s.Preferred = cs.Preferred.Add(m)
		}
	}
	return s, nil
}

// applyFloat gives the anchor child the full inner rect and places the
// remaining children at their resolved offsets, shifted back by the
// anchor fraction of their own size. Floats are clamped into the inner
// rect; the container's reported rect is the anchor's alone.
func (e *Engine) applyFloat(w *quilt.Widget, inner Rect, depth int) (Rect, error) {
	anchorID := e.floatAnchor(w)
	final := RectOf(inner.X, inner.Y, 0, 0)
	for _, id := range w.Children() {
		c := e.tree.Widget(id)
		if c == nil {
			continue
		}
		if id == anchorID {
			r, err := e.apply(c, inner.Inset(c.Margin()), depth+1)
			if err != nil {
				return Rect{}, err
			}
			final = r.Outset(c.Margin())
			continue
		}
		cs, err := e.query(c, inner.Size(), Squeeze{}, depth+1)
		if err != nil {
			return Rect{}, err
		}
		sz := cs.Preferred.Min(inner.Size())
		offX, _ := c.Offset().W.Resolve(inner.Width, e.rootSize.X)
		offY, _ := c.Offset().H.Resolve(inner.Height, e.rootSize.Y)
		frac := c.AnchorFraction()
		slot := RectOf(
			inner.X+offX-frac.X*sz.X,
			inner.Y+offY-frac.Y*sz.Y,
			sz.X, sz.Y,
		).Intersect(inner)
		if _, err := e.apply(c, slot, depth+1); err != nil {
			return Rect{}, err
		}
	}
	return final, nil
}

// floatAnchor returns the designated anchor child, defaulting to the
// first child.
func (e *Engine) floatAnchor(w *quilt.Widget) quilt.WidgetID {
	if a := w.Float().Anchor; a != quilt.None {
		return a
	}
	if kids := w.Children(); len(kids) > 0 {
		return kids[0]
	}
	return quilt.None
}
