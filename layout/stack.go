package layout

import (
	"github.com/quiltui/quilt"
)

// queryStack sizes a stack as the componentwise maximum over its
// children, margins included.
func (e *Engine) queryStack(w *quilt.Widget, inner Point, sq Squeeze, depth int) (Sizing, error) {
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
		m := marginSize(c)
		s.Min = s.Min.Max(cs.Min.Add(m))
		s.Preferred = s.Preferred.Max(cs.Preferred.Add(m))
	}
	return s, nil
}

// applyStack lays every child over the same content rect. On axes where
// the stack alignment is start or stretch the child sees the full inner
// rect; center and end carve an aligned, preferred-sized slot so the
// offset is realized without moving an already-applied subtree. The
// stack's own rect is the union of its children.
func (e *Engine) applyStack(w *quilt.Widget, inner Rect, depth int) (Rect, error) {
	opts := w.Stack()
	var union Rect
	first := true
	for _, id := range w.Children() {
		c := e.tree.Widget(id)
		if c == nil {
			continue
		}
		cs, err := e.query(c, inner.Size(), Squeeze{}, depth+1)
		if err != nil {
			return Rect{}, err
		}
		m := marginSize(c)
		slotW, offX := stackSlot(opts.AlignX, inner.Width, cs.Preferred.X+m.X)
		slotH, offY := stackSlot(opts.AlignY, inner.Height, cs.Preferred.Y+m.Y)
		slot := RectOf(inner.X+offX, inner.Y+offY, slotW, slotH).Inset(c.Margin())
		final, err := e.apply(c, slot, depth+1)
		if err != nil {
			return Rect{}, err
		}
		if first {
			union = final
			first = false
		} else {
			union = union.Union(final)
		}
	}
	if first {
		return RectOf(inner.X, inner.Y, 0, 0), nil
	}
	return union, nil
}

// stackSlot picks the extent and offset of a child slot along one axis.
func stackSlot(a quilt.Align, avail, pref float32) (extent, offset float32) {
	switch a {
	case quilt.AlignCenter, quilt.AlignEnd:
		extent = min(pref, avail)
		return extent, a.Offset(avail, extent)
	default:
		return avail, 0
	}
}
