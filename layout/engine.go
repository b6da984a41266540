package layout

import (
	"github.com/charmbracelet/log"

	"github.com/quiltui/quilt"
	"github.com/quiltui/quilt/text"
)

// Engine owns the layout state for one widget tree: the per-widget query
// cache, committed rects, and the generation counter renderers key their
// retained draw state on.
//
// An Engine is not safe for concurrent use, matching the Tree it wraps.
type Engine struct {
	tree     *quilt.Tree
	measurer text.Measurer
	cfg      Config
	hooks    Hooks
	logger   *log.Logger

	records    []record
	rootSize   Point
	viewport   Rect
	generation uint64
	pending    bool
	inPass     bool
	mutated    bool
}

// New creates an engine for the given tree. The engine subscribes to the
// tree's change notifications; mutations invalidate cached sizing along
// the ancestor chain and schedule a relayout.
func New(tree *quilt.Tree, measurer text.Measurer, cfg Config) *Engine {
	e := &Engine{
		tree:     tree,
		measurer: measurer,
		cfg:      cfg.withDefaults(),
		hooks:    NopHooks{},
		pending:  true,
	}
	e.logger = newLogger(e.cfg.LogLevel)
	tree.OnChange(e.treeChanged)
	return e
}

// SetHooks installs diagnostic callbacks. Passing nil restores NopHooks.
func (e *Engine) SetHooks(h Hooks) {
	if h == nil {
		h = NopHooks{}
	}
	e.hooks = h
}

// Logger exposes the engine's diagnostic logger so embedders can
// redirect or silence it.
func (e *Engine) Logger() *log.Logger { return e.logger }

func (e *Engine) treeChanged(id quilt.WidgetID, kind quilt.ChangeKind) {
	if e.inPass {
		e.mutated = true
		return
	}
	if kind == quilt.ChangeRemoved {
		// The layout record, committed rect included, dies with the
		// widget rather than lingering until the handle is reused.
		if int(id) >= 0 && int(id) < len(e.records) {
			e.records[id] = record{}
		}
		e.pending = true
		return
	}
	e.Invalidate(id)
}

// Invalidate drops cached sizing for the widget and every ancestor and
// marks the tree as needing layout. Siblings and descendants keep their
// cache entries; re-query revisits them only if their inputs changed.
func (e *Engine) Invalidate(id quilt.WidgetID) {
	for id != quilt.None {
		if int(id) < len(e.records) {
			e.records[id].invalidate()
		}
		w := e.tree.Widget(id)
		if w == nil {
			break
		}
		id = w.Parent()
	}
	e.pending = true
}

// NeedsLayout reports whether a mutation has been recorded since the
// last completed pass.
func (e *Engine) NeedsLayout() bool { return e.pending }

// LayoutIfNeeded runs a pass when one is pending or the viewport differs
// from the last completed pass. Any number of mutations between passes
// coalesce into the single pass this performs.
func (e *Engine) LayoutIfNeeded(viewport Rect) error {
	if !e.pending && viewport == e.viewport {
		return nil
	}
	return e.Layout(viewport)
}

// Layout runs a full pass over the tree: query the root against the
// viewport, then apply the viewport rect downward. On success the
// generation advances and committed rects are readable through Rect.
// On failure the previous rects stay in place and the pass remains
// pending.
func (e *Engine) Layout(viewport Rect) error {
	if e.inPass {
		return &LayoutError{Kind: TreeMutated}
	}
	root := e.tree.Root()
	if root == nil {
		e.pending = false
		e.generation++
		return nil
	}
	e.grow()

	// Cached sizings resolve root-relative units against the viewport,
	// so a resize stales every record even where the inherited content
	// area did not move.
	if !samePoint(viewport.Size(), e.rootSize) {
		for i := range e.records {
			e.records[i].invalidate()
		}
	}

	e.inPass = true
	e.mutated = false
	defer func() { e.inPass = false }()

	e.rootSize = viewport.Size()
	if _, err := e.query(root, viewport.Size(), Squeeze{}, 0); err != nil {
		return err
	}
	if _, err := e.apply(root, viewport, 0); err != nil {
		return err
	}
	if e.mutated {
		return &LayoutError{Kind: TreeMutated, Widget: root.ID()}
	}

	e.viewport = viewport
	e.generation++
	e.pending = false
	return nil
}

// Rect returns the widget's committed bounding rect from the last
// completed pass.
func (e *Engine) Rect(id quilt.WidgetID) (Rect, bool) {
	if int(id) < 0 || int(id) >= len(e.records) {
		return Rect{}, false
	}
	r := &e.records[id]
	return r.rect, r.hasRect
}

// Generation returns the count of completed passes. Renderers compare
// it against the generation their draw state was built from.
func (e *Engine) Generation() uint64 { return e.generation }

// EachRect visits every widget with a committed rect in tree order.
func (e *Engine) EachRect(fn func(id quilt.WidgetID, r Rect) bool) {
	e.tree.Walk(func(w *quilt.Widget) bool {
		if r, ok := e.Rect(w.ID()); ok {
			return fn(w.ID(), r)
		}
		return true
	})
}

// grow extends the record table to cover the tree's arena capacity.
// Records are indexed directly by WidgetID.
func (e *Engine) grow() {
	if n := e.tree.Cap(); n > len(e.records) {
		e.records = append(e.records, make([]record, n-len(e.records))...)
	}
}
