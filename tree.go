// Package quilt implements a retained-mode widget tree.
//
// An application declares its widget tree once; the tree stays alive across
// frames and the layout engine (package layout) re-derives geometry from it
// incrementally. Widgets live in an arena owned by the Tree and are
// addressed by dense WidgetID handles. Each record keeps a non-owning
// parent back-reference so invalidation can walk upward while layout walks
// downward, without ownership cycles.
package quilt

// WidgetID is a dense index handle into a Tree's widget arena. IDs are
// stable for the lifetime of the widget and may be reused after removal.
type WidgetID int32

// None is the null widget handle.
const None WidgetID = -1

// ChangeKind identifies what kind of tree change occurred.
type ChangeKind uint8

const (
	// ChangeContent reports that a widget's intrinsic content or declared
	// sizing changed.
	ChangeContent ChangeKind = iota

	// ChangeChildAdded reports that a child entered the widget's child list.
	ChangeChildAdded

	// ChangeChildRemoved reports that a child left the widget's child list.
	ChangeChildRemoved

	// ChangeCreated reports that a widget was allocated, possibly reusing
	// the handle of a removed one.
	ChangeCreated

	// ChangeRemoved reports that the widget itself left the tree and its
	// handle was freed. Derived data attached to the handle dies with it.
	ChangeRemoved
)

// ChangeFunc receives change notifications. id is the widget whose cached
// derived data (if any) is no longer valid.
type ChangeFunc func(id WidgetID, kind ChangeKind)

// Tree owns the widget arena and dispatches change notifications.
//
// A Tree is not safe for concurrent use. The layout engine requires
// exclusive ownership of the tree for the duration of a pass; mutations
// must happen strictly between passes.
type Tree struct {
	nodes []*Widget // indexed by WidgetID; nil marks a free slot
	free  []WidgetID
	root  WidgetID
	subs  []ChangeFunc
}

// NewTree creates an empty widget tree.
func NewTree() *Tree {
	return &Tree{root: None}
}

// New allocates a widget of the given kind. The widget is detached until
// appended to a parent or installed as root.
func (t *Tree) New(kind Kind) *Widget {
	w := &Widget{
		kind:   kind,
		parent: None,
		tree:   t,
		float:  FloatOptions{Anchor: None},
	}

	if n := len(t.free); n > 0 {
		w.id = t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[w.id] = w
	} else {
		w.id = WidgetID(len(t.nodes))
		t.nodes = append(t.nodes, w)
	}
	t.notify(w.id, ChangeCreated)
	return w
}

// Widget returns the record for id, or nil if the widget left the tree.
func (t *Tree) Widget(id WidgetID) *Widget {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// SetRoot installs w as the tree root.
func (t *Tree) SetRoot(w *Widget) {
	t.root = w.id
}

// Root returns the root widget, or nil if none is set.
func (t *Tree) Root() *Widget {
	if t.root == None {
		return nil
	}
	return t.Widget(t.root)
}

// Cap returns the arena capacity: one greater than the highest WidgetID
// ever allocated. The layout engine sizes its record table from this.
func (t *Tree) Cap() int {
	return len(t.nodes)
}

// OnChange registers a change-notification hook. Hooks run synchronously
// from the mutation call, in registration order.
func (t *Tree) OnChange(fn ChangeFunc) {
	t.subs = append(t.subs, fn)
}

func (t *Tree) notify(id WidgetID, kind ChangeKind) {
	for _, fn := range t.subs {
		fn(id, kind)
	}
}

// Remove detaches w and its subtree from the tree and frees their records.
// Handles into the removed subtree become invalid.
func (t *Tree) Remove(w *Widget) {
	if w == nil || t.Widget(w.id) != w {
		return
	}

	parent := w.parent
	if parent != None {
		if p := t.Widget(parent); p != nil {
			p.children = removeID(p.children, w.id)
		}
	}
	if t.root == w.id {
		t.root = None
	}

	t.freeSubtree(w)

	if parent != None {
		t.notify(parent, ChangeChildRemoved)
	}
}

func (t *Tree) freeSubtree(w *Widget) {
	for _, id := range w.children {
		if c := t.Widget(id); c != nil {
			t.freeSubtree(c)
		}
	}
	t.nodes[w.id] = nil
	t.free = append(t.free, w.id)
	w.tree = nil
	t.notify(w.id, ChangeRemoved)
}

func removeID(ids []WidgetID, id WidgetID) []WidgetID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Walk traverses the tree depth-first in declaration order, calling fn for
// each widget. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(w *Widget) bool) {
	if root := t.Root(); root != nil {
		walkWidget(t, root, fn)
	}
}

func walkWidget(t *Tree, w *Widget, fn func(w *Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, id := range w.children {
		if c := t.Widget(id); c != nil {
			if !walkWidget(t, c, fn) {
				return false
			}
		}
	}
	return true
}

// Find returns the first widget matching pred in walk order, or nil.
func (t *Tree) Find(pred func(w *Widget) bool) *Widget {
	var found *Widget
	t.Walk(func(w *Widget) bool {
		if pred(w) {
			found = w
			return false
		}
		return true
	})
	return found
}
