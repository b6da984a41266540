package layout

import (
	"fmt"

	"github.com/quiltui/quilt"
)

// ErrorKind classifies a failed layout pass.
type ErrorKind uint8

const (
	// DepthExceeded means the tree nested deeper than Config.MaxDepth,
	// which in practice indicates a reparenting cycle.
	DepthExceeded ErrorKind = iota
	// TreeMutated means the tree changed while a pass was running, or a
	// nested pass was started from inside one.
	TreeMutated
)

func (k ErrorKind) String() string {
	switch k {
	case DepthExceeded:
		return "depth exceeded"
	case TreeMutated:
		return "tree mutated during pass"
	default:
		return "unknown"
	}
}

// LayoutError is returned by Engine.Layout when a pass cannot complete.
// The pass stays pending; the next successful pass overwrites whatever
// the aborted one committed.
type LayoutError struct {
	Kind   ErrorKind
	Widget quilt.WidgetID
	Depth  int
}

func (e *LayoutError) Error() string {
	if e.Kind == DepthExceeded {
		return fmt.Sprintf("layout: %s at widget %d (depth %d)", e.Kind, e.Widget, e.Depth)
	}
	return fmt.Sprintf("layout: %s (root %d)", e.Kind, e.Widget)
}

// Is matches any LayoutError of the same kind, so callers can use
// errors.Is with the exported sentinels.
func (e *LayoutError) Is(target error) bool {
	t, ok := target.(*LayoutError)
	return ok && t.Kind == e.Kind
}

var (
	ErrDepthExceeded = &LayoutError{Kind: DepthExceeded}
	ErrTreeMutated   = &LayoutError{Kind: TreeMutated}
)
