package layout

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/quiltui/quilt"
)

// Hooks receives diagnostic callbacks from the engine. All callbacks
// fire synchronously inside the layout pass and must not mutate the
// tree.
type Hooks interface {
	// OversizedApply fires when a subtree's committed rect had to be
	// clamped into its allotted rect.
	OversizedApply(id quilt.WidgetID, got, allotted Rect)
	// DepthExceeded fires just before the pass fails with
	// ErrDepthExceeded.
	DepthExceeded(id quilt.WidgetID, depth int)
}

// NopHooks is the default Hooks implementation.
type NopHooks struct{}

func (NopHooks) OversizedApply(quilt.WidgetID, Rect, Rect) {}
func (NopHooks) DepthExceeded(quilt.WidgetID, int)         {}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "layout"})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
