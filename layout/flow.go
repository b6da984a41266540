package layout

import (
	"github.com/quiltui/quilt"
	"github.com/quiltui/quilt/internal/pool"
)

// queryFlow sizes a flow container: children sum along the main axis and
// the widest child sets the cross axis. The min pass squeezes the main
// axis so children report their tightest packing; the preferred pass
// runs unbiased.
func (e *Engine) queryFlow(w *quilt.Widget, inner Point, depth int) (Sizing, error) {
	opts := w.Flow()
	horiz := opts.Direction.Horizontal()
	minSq := mainSqueeze(horiz)

	var sumMin, sumPref, maxMinCross, maxPrefCross float32
	n := 0
	for _, id := range w.Children() {
		c := e.tree.Widget(id)
		if c == nil {
			continue
		}
		ms, err := e.query(c, inner, minSq, depth+1)
		if err != nil {
			return Sizing{}, err
		}
		ps, err := e.query(c, inner, Squeeze{}, depth+1)
		if err != nil {
			return Sizing{}, err
		}
		m := c.Margin()
		mm := mainExtent(m.Horizontal(), m.Vertical(), horiz)
		cm := mainExtent(m.Vertical(), m.Horizontal(), horiz)
		sumMin += ms.Min.axis(horiz) + mm
		sumPref += ps.Preferred.axis(horiz) + mm
		maxMinCross = max(maxMinCross, ms.Min.cross(horiz)+cm)
		maxPrefCross = max(maxPrefCross, ps.Preferred.cross(horiz)+cm)
		n++
	}
	if n > 1 {
		g := opts.Gap * float32(n-1)
		sumMin += g
		sumPref += g
	}
	return Sizing{
		Min:       fromAxes(sumMin, maxMinCross, horiz),
		Preferred: fromAxes(sumPref, maxPrefCross, horiz),
	}, nil
}

// applyFlow distributes the inner main extent across children and lays
// them out in declaration order. Every child is allotted at least its
// minimum when space permits; extra space fills toward preferred sizes
// and any remainder is spent by the justify mode, never on growing a
// child past its preferred size.
func (e *Engine) applyFlow(w *quilt.Widget, inner Rect, depth int) (Rect, error) {
	opts := w.Flow()
	horiz := opts.Direction.Horizontal()
	kids := w.Children()
	n := len(kids)
	if n == 0 {
		return RectOf(inner.X, inner.Y, 0, 0), nil
	}
	innerSize := inner.Size()
	minSq := mainSqueeze(horiz)

	mins := pool.Floats(n)
	prefs := pool.Floats(n)
	crossPrefs := pool.Floats(n)
	defer pool.PutFloats(mins)
	defer pool.PutFloats(prefs)
	defer pool.PutFloats(crossPrefs)

	for i, id := range kids {
		c := e.tree.Widget(id)
		if c == nil {
			continue
		}
		ms, err := e.query(c, innerSize, minSq, depth+1)
		if err != nil {
			return Rect{}, err
		}
		ps, err := e.query(c, innerSize, Squeeze{}, depth+1)
		if err != nil {
			return Rect{}, err
		}
		m := c.Margin()
		mm := mainExtent(m.Horizontal(), m.Vertical(), horiz)
		cm := mainExtent(m.Vertical(), m.Horizontal(), horiz)
		mins[i] = ms.Min.axis(horiz) + mm
		prefs[i] = ps.Preferred.axis(horiz) + mm
		crossPrefs[i] = ps.Preferred.cross(horiz) + cm
	}

	gap := opts.Gap
	gaps := gap * float32(n-1)
	availMain := max(innerSize.axis(horiz)-gaps, 0)
	assigned := e.distribute(mins, prefs, availMain)
	defer pool.PutFloats(assigned)

	var used float32
	for _, a := range assigned {
		used += a
	}
	free := max(availMain-used, 0)

	var lead, between float32
	switch opts.Justify {
	case quilt.JustifyCenter:
		lead = free / 2
	case quilt.JustifyEnd:
		lead = free
	case quilt.JustifyBetween:
		if n > 1 {
			between = free / float32(n-1)
		}
	}

	// Re-query each child at the main extent it was actually dealt so
	// wrap-dependent cross sizes reflect the real slot, not the
	// unsqueezed preferred.
	crossAvail := innerSize.cross(horiz)
	for i, id := range kids {
		c := e.tree.Widget(id)
		if c == nil {
			continue
		}
		m := c.Margin()
		mm := mainExtent(m.Horizontal(), m.Vertical(), horiz)
		cm := mainExtent(m.Vertical(), m.Horizontal(), horiz)
		area := fromAxes(max(assigned[i]-mm, 0), max(crossAvail-cm, 0), horiz)
		cs, err := e.query(c, area, Squeeze{}, depth+1)
		if err != nil {
			return Rect{}, err
		}
		crossPrefs[i] = cs.Preferred.cross(horiz) + cm
	}

	// An auto cross axis hugs the widest child instead of filling the
	// allotted rect.
	effCross := crossAvail
	if crossIsAuto(w, horiz) {
		var widest float32
		for _, cp := range crossPrefs {
			widest = max(widest, cp)
		}
		effCross = min(crossAvail, widest)
	}

	mainStart := mainExtent(inner.X, inner.Y, horiz)
	crossStart := mainExtent(inner.Y, inner.X, horiz)
	cursor := mainStart + lead
	for i, id := range kids {
		c := e.tree.Widget(id)
		if c == nil {
			continue
		}
		slotCross, crossOff := effCross, float32(0)
		if opts.Align != quilt.AlignStretch && crossPrefs[i] < effCross {
			slotCross = crossPrefs[i]
			crossOff = opts.Align.Offset(effCross, slotCross)
		}
		slot := rectFromAxes(cursor, crossStart+crossOff, assigned[i], slotCross, horiz)
		if _, err := e.apply(c, slot.Inset(c.Margin()), depth+1); err != nil {
			return Rect{}, err
		}
		cursor += assigned[i] + gap + between
	}

	mainFinal := min(cursor-gap-between-mainStart, innerSize.axis(horiz))
	return rectFromAxes(mainStart, crossStart, max(mainFinal, 0), effCross, horiz), nil
}

// distribute splits avail across children. When even the minimums do not
// fit, every child shrinks in proportion to its minimum. Otherwise each
// child starts at its minimum, grows toward its preferred size in
// proportion to its share of the total headroom, and residual space
// water-fills evenly across children still short of preferred until the
// remainder drops below Epsilon or the iteration cap is hit. Identical
// inputs in identical order yield bit-identical results.
func (e *Engine) distribute(mins, prefs []float32, avail float32) []float32 {
	n := len(mins)
	out := pool.Floats(n)
	var sumMin, sumPref float32
	for i := range mins {
		sumMin += mins[i]
		sumPref += prefs[i]
	}

	if sumMin >= avail {
		if sumMin <= 0 {
			return out
		}
		for i := range out {
			out[i] = avail * mins[i] / sumMin
		}
		return out
	}

	extra := avail - sumMin
	headroom := sumPref - sumMin
	if headroom > 0 {
		grant := min(extra, headroom)
		for i := range out {
			out[i] = mins[i] + grant*(prefs[i]-mins[i])/headroom
		}
		extra -= grant
	} else {
		copy(out, mins)
	}

	eps := e.cfg.Epsilon
	for iter := 0; iter < e.cfg.MaxFillIterations && extra > eps; iter++ {
		open := 0
		for i := range out {
			if out[i] < prefs[i]-eps {
				open++
			}
		}
		if open == 0 {
			break
		}
		share := extra / float32(open)
		for i := range out {
			if out[i] < prefs[i]-eps {
				take := min(share, prefs[i]-out[i])
				out[i] += take
				extra -= take
			}
		}
	}
	return out
}

// crossIsAuto reports whether the flow's declared size is auto on the
// cross axis.
func crossIsAuto(w *quilt.Widget, horiz bool) bool {
	if horiz {
		return w.Size().H.IsAuto()
	}
	return w.Size().W.IsAuto()
}

// mainExtent selects h when the main axis is horizontal, v otherwise.
func mainExtent(h, v float32, horiz bool) float32 {
	if horiz {
		return h
	}
	return v
}
