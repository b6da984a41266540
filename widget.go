package quilt

import (
	"github.com/quiltui/quilt/text"
	"github.com/quiltui/quilt/unit"
)

// Kind identifies the widget variant. Container behavior is a tagged
// variant chosen at construction, never combined.
type Kind uint8

const (
	// KindBox is a plain leaf widget sized by its declared size.
	KindBox Kind = iota

	// KindText is a leaf widget sized by measured, possibly wrapped text.
	KindText

	// KindFlow is a container that lays children out along a main axis.
	KindFlow

	// KindStack is a container that overlays children in the same rect.
	KindStack

	// KindFloat is a container whose children are detached from flow and
	// placed by explicit offset and anchor.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindText:
		return "text"
	case KindFlow:
		return "flow"
	case KindStack:
		return "stack"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Container reports whether the kind lays out children.
func (k Kind) Container() bool {
	return k == KindFlow || k == KindStack || k == KindFloat
}

// Direction selects the main axis of a flow container.
type Direction uint8

const (
	Row Direction = iota
	Column
)

// Horizontal reports whether the main axis is x.
func (d Direction) Horizontal() bool { return d == Row }

// Justify controls child placement along a flow's main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifyBetween
)

// Align controls placement across the relevant axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Offset returns the leading offset that places an extent of size within
// total. Stretch aligns like start; the caller grows the extent instead.
func (a Align) Offset(total, size float32) float32 {
	switch a {
	case AlignCenter:
		return (total - size) / 2
	case AlignEnd:
		return total - size
	default:
		return 0
	}
}

// Edges is a set of per-side pixel insets.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// UniformEdges returns edges with the same inset on every side.
func UniformEdges(v float32) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the combined left and right inset.
func (e Edges) Horizontal() float32 { return e.Left + e.Right }

// Vertical returns the combined top and bottom inset.
func (e Edges) Vertical() float32 { return e.Top + e.Bottom }

// FlowOptions configures a flow container.
type FlowOptions struct {
	Direction Direction
	Justify   Justify
	Align     Align
	Gap       float32
}

// StackOptions configures a stack container. Alignment offsets a child
// within the stack's rect on axes the child does not stretch.
type StackOptions struct {
	AlignX, AlignY Align
}

// FloatOptions configures a float container. Anchor designates the child
// whose size the container reports during sizing queries; None means the
// first child. Floating children never contribute to parent sizing.
type FloatOptions struct {
	Anchor WidgetID
}

// Anchor is a pair of self-size fractions used to place floating children:
// (0,0) anchors the child's top-left at the resolved offset, (0.5,0.5) its
// center, (1,1) its bottom-right.
type Anchor struct {
	X, Y float32
}

// Widget is a single record in the tree arena. The parent widget owns the
// ordered child list; derived layout data is attached externally by the
// layout engine, keyed by WidgetID.
type Widget struct {
	id       WidgetID
	parent   WidgetID
	children []WidgetID
	kind     Kind
	tree     *Tree

	size    unit.Size
	minSize unit.Size
	maxSize unit.Size // auto axes are unconstrained
	margin  Edges
	padding Edges
	alignX  Align
	alignY  Align
	offset  unit.Size // float placement offset within the container
	anchor  Anchor    // float placement anchor

	flow    FlowOptions
	stack   StackOptions
	float   FloatOptions
	content string
	style   text.Style
}

// ID returns the widget's arena handle.
func (w *Widget) ID() WidgetID { return w.id }

// Kind returns the widget variant.
func (w *Widget) Kind() Kind { return w.kind }

// Parent returns the handle of the owning parent, or None.
func (w *Widget) Parent() WidgetID { return w.parent }

// Children returns the ordered child handles. The returned slice is owned
// by the widget and must not be mutated.
func (w *Widget) Children() []WidgetID { return w.children }

// Append adds children to the end of w's child list, detaching them from
// any previous parent first.
func (w *Widget) Append(children ...*Widget) *Widget {
	for _, c := range children {
		if c == nil || c.tree != w.tree {
			continue
		}
		if c.parent != None {
			if p := w.tree.Widget(c.parent); p != nil {
				p.children = removeID(p.children, c.id)
				w.tree.notify(p.id, ChangeChildRemoved)
			}
		}
		c.parent = w.id
		w.children = append(w.children, c.id)
	}
	w.tree.notify(w.id, ChangeChildAdded)
	return w
}

// Declared sizing.

// Size returns the declared size.
func (w *Widget) Size() unit.Size { return w.size }

// MinSize returns the declared minimum size.
func (w *Widget) MinSize() unit.Size { return w.minSize }

// MaxSize returns the declared maximum size. Auto axes are unconstrained.
func (w *Widget) MaxSize() unit.Size { return w.maxSize }

// Margin returns the widget's outer spacing edges.
func (w *Widget) Margin() Edges { return w.margin }

// Padding returns the widget's inner content insets.
func (w *Widget) Padding() Edges { return w.padding }

// AlignX returns the widget's own horizontal alignment inside its
// allotted rect.
func (w *Widget) AlignX() Align { return w.alignX }

// AlignY returns the vertical counterpart of AlignX.
func (w *Widget) AlignY() Align { return w.alignY }

// Offset returns the placement offset used when w floats.
func (w *Widget) Offset() unit.Size { return w.offset }

// AnchorFraction returns the placement anchor used when w floats.
func (w *Widget) AnchorFraction() Anchor { return w.anchor }

// Flow returns the flow options. Meaningful only for KindFlow.
func (w *Widget) Flow() FlowOptions { return w.flow }

// Stack returns the stack options. Meaningful only for KindStack.
func (w *Widget) Stack() StackOptions { return w.stack }

// Float returns the float options. Meaningful only for KindFloat.
func (w *Widget) Float() FloatOptions { return w.float }

// Content returns the text content of a KindText widget.
func (w *Widget) Content() string { return w.content }

// Style returns the text style of a KindText widget.
func (w *Widget) Style() text.Style { return w.style }

// Fluent mutators. Every mutation notifies the tree's change hooks so the
// layout engine can invalidate cached sizes.

// WithSize declares the widget's size.
func (w *Widget) WithSize(s unit.Size) *Widget {
	w.size = s
	w.changed()
	return w
}

// WithMinSize declares a lower bound on the widget's size.
func (w *Widget) WithMinSize(s unit.Size) *Widget {
	w.minSize = s
	w.changed()
	return w
}

// WithMaxSize declares an upper bound on the widget's size.
func (w *Widget) WithMaxSize(s unit.Size) *Widget {
	w.maxSize = s
	w.changed()
	return w
}

// WithMargin sets the outer spacing edges.
func (w *Widget) WithMargin(e Edges) *Widget {
	w.margin = e
	w.changed()
	return w
}

// WithPadding sets the inner content insets.
func (w *Widget) WithPadding(e Edges) *Widget {
	w.padding = e
	w.changed()
	return w
}

// WithAlign sets the widget's own alignment inside its allotted rect.
func (w *Widget) WithAlign(x, y Align) *Widget {
	w.alignX, w.alignY = x, y
	w.changed()
	return w
}

// WithOffset sets the float placement offset.
func (w *Widget) WithOffset(o unit.Size) *Widget {
	w.offset = o
	w.changed()
	return w
}

// WithAnchor sets the float placement anchor.
func (w *Widget) WithAnchor(a Anchor) *Widget {
	w.anchor = a
	w.changed()
	return w
}

// WithFlow sets the flow options of a KindFlow container.
func (w *Widget) WithFlow(opts FlowOptions) *Widget {
	w.flow = opts
	w.changed()
	return w
}

// WithStack sets the stack options of a KindStack container.
func (w *Widget) WithStack(opts StackOptions) *Widget {
	w.stack = opts
	w.changed()
	return w
}

// WithFloat sets the float options of a KindFloat container.
func (w *Widget) WithFloat(opts FloatOptions) *Widget {
	w.float = opts
	w.changed()
	return w
}

// WithText sets the content of a KindText widget.
func (w *Widget) WithText(content string) *Widget {
	w.content = content
	w.changed()
	return w
}

// WithStyle sets the text style of a KindText widget.
func (w *Widget) WithStyle(s text.Style) *Widget {
	w.style = s
	w.changed()
	return w
}

func (w *Widget) changed() {
	if w.tree != nil {
		w.tree.notify(w.id, ChangeContent)
	}
}

// Convenience constructors.

// Box creates a plain leaf widget with the declared size.
func (t *Tree) Box(size unit.Size) *Widget {
	return t.New(KindBox).WithSize(size)
}

// Label creates a text leaf.
func (t *Tree) Label(content string, style text.Style) *Widget {
	w := t.New(KindText)
	w.content = content
	w.style = style
	return w
}

// Row creates a horizontal flow container.
func (t *Tree) Row(gap float32, children ...*Widget) *Widget {
	w := t.New(KindFlow)
	w.flow = FlowOptions{Direction: Row, Gap: gap}
	return w.Append(children...)
}

// Column creates a vertical flow container.
func (t *Tree) Column(gap float32, children ...*Widget) *Widget {
	w := t.New(KindFlow)
	w.flow = FlowOptions{Direction: Column, Gap: gap}
	return w.Append(children...)
}

// Stack creates an overlay container.
func (t *Tree) Stack(children ...*Widget) *Widget {
	return t.New(KindStack).Append(children...)
}

// Float creates a float container. anchor participates in parent sizing;
// the remaining children float above it.
func (t *Tree) Float(anchor *Widget, floats ...*Widget) *Widget {
	w := t.New(KindFloat)
	w.Append(anchor)
	w.Append(floats...)
	w.float = FloatOptions{Anchor: anchor.ID()}
	return w
}
