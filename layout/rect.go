// Package layout computes the geometry of a quilt widget tree.
//
// A layout pass has two stages. The query stage discovers the minimum and
// preferred size of each subtree as a pure, memoized function of (widget,
// content area, squeeze axes). The apply stage walks down once with final
// allotted rectangles and commits each widget's bounding rect. Container
// behavior (flow, stack, float) is a tagged variant dispatched in both
// stages. Draw-call generation is a strictly later phase that only reads
// committed rects through the Engine's lookup and generation counter.
package layout

import (
	"fmt"

	"github.com/quiltui/quilt"
	"github.com/quiltui/quilt/unit"
)

// Point is a two-axis pixel extent or position.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Add returns p + q componentwise.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q componentwise.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Max returns the componentwise maximum.
func (p Point) Max(q Point) Point {
	return Point{max(p.X, q.X), max(p.Y, q.Y)}
}

// Min returns the componentwise minimum.
func (p Point) Min(q Point) Point {
	return Point{min(p.X, q.X), min(p.Y, q.Y)}
}

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// axis returns the extent along the main axis of a direction.
func (p Point) axis(horizontal bool) float32 {
	if horizontal {
		return p.X
	}
	return p.Y
}

// cross returns the extent across the main axis of a direction.
func (p Point) cross(horizontal bool) float32 {
	if horizontal {
		return p.Y
	}
	return p.X
}

// fromAxes assembles a point from main- and cross-axis extents.
func fromAxes(main, cross float32, horizontal bool) Point {
	if horizontal {
		return Point{main, cross}
	}
	return Point{cross, main}
}

// Rect is an axis-aligned rectangle in resolved pixel space. Width and
// Height are never negative; degenerate (zero) extents are valid.
type Rect struct {
	X, Y, Width, Height float32
}

// RectOf returns a rect with extents clamped to be non-negative.
func RectOf(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, Width: max(w, 0), Height: max(h, 0)}
}

// Size returns the rect's extents.
func (r Rect) Size() Point { return Point{r.Width, r.Height} }

// MaxX returns the right edge.
func (r Rect) MaxX() float32 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 { return r.Y + r.Height }

// Empty reports whether the rect has zero area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Union returns the bounding rect of r and o. An empty rect contributes
// only its position.
func (r Rect) Union(o Rect) Rect {
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.MaxX(), o.MaxX())
	y1 := max(r.MaxY(), o.MaxY())
	return RectOf(x0, y0, x1-x0, y1-y0)
}

// Intersect returns the overlap of r and o, degenerate when they are
// disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	return RectOf(x0, y0, x1-x0, y1-y0)
}

// Contains reports whether o lies within r, allowing Tolerance of float
// noise on every edge.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X-Tolerance &&
		o.Y >= r.Y-Tolerance &&
		o.MaxX() <= r.MaxX()+Tolerance &&
		o.MaxY() <= r.MaxY()+Tolerance
}

// Inset shrinks the rect by the given edges, never below zero extent.
func (r Rect) Inset(e quilt.Edges) Rect {
	return RectOf(r.X+e.Left, r.Y+e.Top, r.Width-e.Horizontal(), r.Height-e.Vertical())
}

// Outset grows the rect by the given edges.
func (r Rect) Outset(e quilt.Edges) Rect {
	return RectOf(r.X-e.Left, r.Y-e.Top, r.Width+e.Horizontal(), r.Height+e.Vertical())
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g; %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// rectFromAxes assembles a rect from main/cross positions and extents.
func rectFromAxes(mainPos, crossPos, mainExt, crossExt float32, horizontal bool) Rect {
	if horizontal {
		return RectOf(mainPos, crossPos, mainExt, crossExt)
	}
	return RectOf(crossPos, mainPos, crossExt, mainExt)
}

// Squeeze tells a sizing query which axes to minimize at the potential
// expense of the other. It is not persistent state; callers pass it down
// fresh on every query.
type Squeeze struct {
	X, Y bool
}

// slot maps the squeeze combination onto a cache slot index.
func (s Squeeze) slot() int {
	i := 0
	if s.X {
		i |= 1
	}
	if s.Y {
		i |= 2
	}
	return i
}

// mainSqueeze returns the squeeze that minimizes a flow's main axis.
func mainSqueeze(horizontal bool) Squeeze {
	if horizontal {
		return Squeeze{X: true}
	}
	return Squeeze{Y: true}
}

// Sizing is the result of a sizing query: the smallest size the subtree
// can be squeezed into and the size it would take given free space.
// Min never exceeds Preferred componentwise.
type Sizing struct {
	Min, Preferred Point
}

// sameExtent compares two content-area extents, treating all unresolved
// extents as equal.
func sameExtent(a, b float32) bool {
	ar, br := unit.Resolved(a), unit.Resolved(b)
	if ar != br {
		return false
	}
	if !ar {
		return true
	}
	d := a - b
	return d >= -Tolerance && d <= Tolerance
}

func samePoint(a, b Point) bool {
	return sameExtent(a.X, b.X) && sameExtent(a.Y, b.Y)
}
