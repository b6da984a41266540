package layout

// Tolerance is the pixel slack under which two content areas are
// considered the same for memoization and containment checks. Sub-pixel
// jitter from float accumulation must not defeat the cache.
const Tolerance = 0.1

// cachedQuery memoizes one sizing query keyed by the content area it was
// computed against.
type cachedQuery struct {
	valid   bool
	content Point
	sizing  Sizing
}

// record is the engine's per-widget layout state, indexed by WidgetID.
// Each squeeze combination keeps a few cache entries because one pass
// queries a widget under up to three content areas: the parent's
// content area during sizing, the distributed main extent after flow
// distribution, and the final slot during apply. All of them must
// survive for the next pass to run from cache.
type record struct {
	queries [4][3]cachedQuery
	rect    Rect
	hasRect bool
}

func (r *record) invalidate() {
	r.queries = [4][3]cachedQuery{}
	r.hasRect = false
}

// lookup returns the memoized sizing for the given squeeze combination
// and content area, if any.
func (r *record) lookup(sq Squeeze, content Point) (Sizing, bool) {
	for i := range r.queries[sq.slot()] {
		c := &r.queries[sq.slot()][i]
		if c.valid && samePoint(c.content, content) {
			return c.sizing, true
		}
	}
	return Sizing{}, false
}

func (r *record) store(sq Squeeze, content Point, s Sizing) {
	slot := &r.queries[sq.slot()]
	for i := range slot {
		if slot[i].valid && samePoint(slot[i].content, content) {
			slot[i].sizing = s
			return
		}
	}
	copy(slot[1:], slot[:len(slot)-1])
	slot[0] = cachedQuery{valid: true, content: content, sizing: s}
}
