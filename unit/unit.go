// Package unit provides the sizing value types used by the layout engine.
//
// A Unit is a single-axis measurement that is resolved to pixels against a
// resolution context: the content area handed down by the parent widget and
// the size of the root viewport. Auto units carry no value of their own and
// defer to the widget's content.
package unit

import (
	"fmt"
	"math"
)

// Kind discriminates the unit variants.
type Kind uint8

const (
	// KindAuto defers to the widget's own content for sizing. It is the
	// zero value.
	KindAuto Kind = iota

	// KindPx is an absolute pixel length.
	KindPx

	// KindRel is a fraction of the parent-provided content area.
	KindRel

	// KindRootRel is a fraction of the root viewport.
	KindRootRel
)

// Unit is a single-axis size value. The zero value is Auto.
type Unit struct {
	kind  Kind
	value float32
}

// Px returns an absolute pixel unit.
func Px(v float32) Unit { return Unit{kind: KindPx, value: v} }

// Rel returns a unit that resolves to a fraction of the content area.
// Negative fractions resolve to zero.
func Rel(f float32) Unit { return Unit{kind: KindRel, value: f} }

// RootRel returns a unit that resolves to a fraction of the root viewport.
// Negative fractions resolve to zero.
func RootRel(f float32) Unit { return Unit{kind: KindRootRel, value: f} }

// Auto returns a content-driven unit.
func Auto() Unit { return Unit{kind: KindAuto} }

// Kind returns the unit variant.
func (u Unit) Kind() Kind { return u.kind }

// IsAuto reports whether the unit defers to content sizing.
func (u Unit) IsAuto() bool { return u.kind == KindAuto }

// Value returns the raw pixel length or fraction. Meaningless for Auto.
func (u Unit) Value() float32 { return u.value }

// Resolve converts the unit to a pixel length. content is the extent of the
// available content area along the unit's axis and root the extent of the
// root viewport along the same axis.
//
// Auto units do not resolve; the second return is false and the caller must
// ask the widget for its intrinsic size instead. A Rel unit against an
// unresolved content extent (see Resolved) resolves to 0 rather than
// failing: the widget falls back to its own minimum, which breaks the
// recursion between two mutually auto-sized axes.
func (u Unit) Resolve(content, root float32) (float32, bool) {
	switch u.kind {
	case KindPx:
		return u.value, true
	case KindRel:
		if !Resolved(content) {
			return 0, true
		}
		return max(u.value, 0) * content, true
	case KindRootRel:
		return max(u.value, 0) * root, true
	default:
		return 0, false
	}
}

func (u Unit) String() string {
	switch u.kind {
	case KindPx:
		return fmt.Sprintf("%gpx", u.value)
	case KindRel:
		return fmt.Sprintf("%g%%", u.value*100)
	case KindRootRel:
		return fmt.Sprintf("%gvp", u.value*100)
	default:
		return "auto"
	}
}

// Size is a width/height pair of units. The axes are independent; it is
// valid to mix, say, a fixed width with an auto height.
type Size struct {
	W, H Unit
}

// SizePx returns a fixed pixel size.
func SizePx(w, h float32) Size { return Size{W: Px(w), H: Px(h)} }

// SizeRel returns a size expressed as content-area fractions.
func SizeRel(w, h float32) Size { return Size{W: Rel(w), H: Rel(h)} }

// SizeAuto returns a fully content-driven size. This is the zero value.
func SizeAuto() Size { return Size{} }

// IsAuto reports whether both axes are content-driven.
func (s Size) IsAuto() bool { return s.W.IsAuto() && s.H.IsAuto() }

func (s Size) String() string { return fmt.Sprintf("(%s, %s)", s.W, s.H) }

// Unresolved marks a content-area extent whose value is not yet known,
// typically because the parent is itself auto-sized along that axis.
var Unresolved = float32(math.Inf(1))

// Resolved reports whether a content-area extent carries a usable value.
func Resolved(extent float32) bool {
	return !math.IsInf(float64(extent), 1)
}
