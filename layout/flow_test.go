package layout

import (
	"testing"

	"github.com/quiltui/quilt"
	"github.com/quiltui/quilt/unit"
)

func TestFlowFixedChildrenPackAtStart(t *testing.T) {
	tree := quilt.NewTree()
	a := tree.Box(unit.SizePx(50, 50))
	b := tree.Box(unit.SizePx(50, 50))
	c := tree.Box(unit.SizePx(50, 50))
	root := tree.Row(0, a, b, c).WithSize(unit.SizeRel(1, 1))
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 200, 100))

	wantRect(t, e, root, RectOf(0, 0, 200, 100))
	wantRect(t, e, a, RectOf(0, 0, 50, 50))
	wantRect(t, e, b, RectOf(50, 0, 50, 50))
	wantRect(t, e, c, RectOf(100, 0, 50, 50))
}

func TestFlowGapSeparatesChildren(t *testing.T) {
	tree := quilt.NewTree()
	a := tree.Box(unit.SizePx(50, 50))
	b := tree.Box(unit.SizePx(50, 50))
	c := tree.Box(unit.SizePx(50, 50))
	root := tree.Row(10, a, b, c).WithSize(unit.SizeRel(1, 1))
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 200, 100))

	wantRect(t, e, a, RectOf(0, 0, 50, 50))
	wantRect(t, e, b, RectOf(60, 0, 50, 50))
	wantRect(t, e, c, RectOf(120, 0, 50, 50))
}

func TestFlowJustify(t *testing.T) {
	tests := []struct {
		name    string
		justify quilt.Justify
		wantX   [2]float32
	}{
		{name: "start", justify: quilt.JustifyStart, wantX: [2]float32{0, 50}},
		{name: "center", justify: quilt.JustifyCenter, wantX: [2]float32{50, 100}},
		{name: "end", justify: quilt.JustifyEnd, wantX: [2]float32{100, 150}},
		{name: "between", justify: quilt.JustifyBetween, wantX: [2]float32{0, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := quilt.NewTree()
			a := tree.Box(unit.SizePx(50, 50))
			b := tree.Box(unit.SizePx(50, 50))
			root := tree.Row(0, a, b).WithSize(unit.SizeRel(1, 1))
			root.WithFlow(quilt.FlowOptions{Direction: quilt.Row, Justify: tt.justify})
			tree.SetRoot(root)

			e := newTestEngine(tree)
			mustLayout(t, e, RectOf(0, 0, 200, 100))

			wantRect(t, e, a, RectOf(tt.wantX[0], 0, 50, 50))
			wantRect(t, e, b, RectOf(tt.wantX[1], 0, 50, 50))
		})
	}
}

func TestFlowCrossAlign(t *testing.T) {
	tests := []struct {
		name  string
		align quilt.Align
		want  Rect
	}{
		{name: "start", align: quilt.AlignStart, want: RectOf(0, 0, 50, 20)},
		{name: "center", align: quilt.AlignCenter, want: RectOf(0, 40, 50, 20)},
		{name: "end", align: quilt.AlignEnd, want: RectOf(0, 80, 50, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := quilt.NewTree()
			a := tree.Box(unit.SizePx(50, 20))
			root := tree.Row(0, a).WithSize(unit.SizeRel(1, 1))
			root.WithFlow(quilt.FlowOptions{Direction: quilt.Row, Align: tt.align})
			tree.SetRoot(root)

			e := newTestEngine(tree)
			mustLayout(t, e, RectOf(0, 0, 200, 100))
			wantRect(t, e, a, tt.want)
		})
	}
}

func TestFlowCrossStretchGrowsRelativeChild(t *testing.T) {
	tree := quilt.NewTree()
	a := tree.Box(unit.Size{W: unit.Px(50), H: unit.Rel(1)})
	root := tree.Row(0, a).WithSize(unit.SizeRel(1, 1))
	root.WithFlow(quilt.FlowOptions{Direction: quilt.Row, Align: quilt.AlignStretch})
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 200, 100))
	wantRect(t, e, a, RectOf(0, 0, 50, 100))
}

// Two texts with a 50px longest word and a 110px natural width share a
// 200px row: each starts at its minimum and grows an equal share of the
// headroom toward preferred.
func TestFlowWaterFilling(t *testing.T) {
	tree := quilt.NewTree()
	a := tree.Label("aaaaa bbbbb", testStyle())
	b := tree.Label("ccccc ddddd", testStyle())
	root := tree.Row(0, a, b).WithSize(unit.SizeRel(1, 1))
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 200, 100))

	ra, _ := e.Rect(a.ID())
	rb, _ := e.Rect(b.ID())
	// 100px slots each: the text wraps to two 50px lines inside them.
	if !approx(rb.X-ra.X, 100) {
		t.Errorf("slot stride = %v, want 100", rb.X-ra.X)
	}
	wantRect(t, e, a, RectOf(0, 0, 50, 20))
	wantRect(t, e, b, RectOf(100, 0, 50, 20))
}

// When even the minimums overflow, children shrink in proportion to
// their minimums and the total never exceeds the row.
func TestFlowOverflowShrinksProportionally(t *testing.T) {
	tree := quilt.NewTree()
	a := tree.Box(unit.SizePx(50, 10))
	b := tree.Box(unit.SizePx(50, 10))
	root := tree.Row(0, a, b).WithSize(unit.SizeRel(1, 1))
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 60, 100))

	wantRect(t, e, a, RectOf(0, 0, 30, 10))
	wantRect(t, e, b, RectOf(30, 0, 30, 10))
}

func TestColumnStacksVertically(t *testing.T) {
	tree := quilt.NewTree()
	a := tree.Box(unit.SizePx(50, 30))
	b := tree.Box(unit.SizePx(50, 30))
	root := tree.Column(5, a, b).WithSize(unit.SizeRel(1, 1))
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 100, 200))

	wantRect(t, e, a, RectOf(0, 0, 50, 30))
	wantRect(t, e, b, RectOf(0, 35, 50, 30))
}

func TestFlowChildMarginSpacing(t *testing.T) {
	tree := quilt.NewTree()
	a := tree.Box(unit.SizePx(50, 50)).WithMargin(quilt.UniformEdges(10))
	b := tree.Box(unit.SizePx(50, 50))
	root := tree.Row(0, a, b).WithSize(unit.SizeRel(1, 1))
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 200, 100))

	// a's slot is 70 wide with the box inset 10 on every side.
	wantRect(t, e, a, RectOf(10, 10, 50, 50))
	wantRect(t, e, b, RectOf(70, 0, 50, 50))
}

func TestFlowPaddingInsetsChildren(t *testing.T) {
	tree := quilt.NewTree()
	a := tree.Box(unit.SizePx(50, 50))
	root := tree.Row(0, a).WithSize(unit.SizeRel(1, 1)).WithPadding(quilt.UniformEdges(8))
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 200, 100))
	wantRect(t, e, a, RectOf(8, 8, 50, 50))
}

// A fixed-size container dealt a larger slot keeps its children inside
// its own declared box, not the slot.
func TestDeclaredSizeBoundsChildren(t *testing.T) {
	tree := quilt.NewTree()
	leaf := tree.Box(unit.SizePx(50, 50))
	inner := tree.Row(0, leaf).WithSize(unit.SizePx(100, 50))
	root := tree.Row(0, inner).WithSize(unit.SizeRel(1, 1))
	root.WithFlow(quilt.FlowOptions{Direction: quilt.Row, Align: quilt.AlignStretch})
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 800, 600))

	wantRect(t, e, inner, RectOf(0, 0, 100, 50))
	wantRect(t, e, leaf, RectOf(0, 0, 50, 50))
}

// Justification spends the free space inside the declared main extent,
// not the full slot the container was dealt.
func TestDeclaredWidthBoundsJustify(t *testing.T) {
	tree := quilt.NewTree()
	leaf := tree.Box(unit.SizePx(50, 50))
	root := tree.Row(0, leaf).WithSize(unit.Size{W: unit.Px(300), H: unit.Rel(1)})
	root.WithFlow(quilt.FlowOptions{Direction: quilt.Row, Justify: quilt.JustifyEnd})
	tree.SetRoot(root)

	e := newTestEngine(tree)
	mustLayout(t, e, RectOf(0, 0, 800, 600))

	wantRect(t, e, root, RectOf(0, 0, 300, 600))
	wantRect(t, e, leaf, RectOf(250, 0, 50, 50))
}

// Children's committed main extents plus gaps never exceed the row's
// own committed extent, whether space is plentiful or overflowing.
func TestFlowConservesMainExtent(t *testing.T) {
	tests := []struct {
		name  string
		width float32
		gap   float32
	}{
		{name: "roomy", width: 400, gap: 0},
		{name: "tight", width: 120, gap: 4},
		{name: "overflowing", width: 60, gap: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := quilt.NewTree()
			kids := []*quilt.Widget{
				tree.Box(unit.SizePx(50, 10)),
				tree.Label("gull tern skua", testStyle()),
				tree.Box(unit.Size{W: unit.Rel(0.25), H: unit.Px(10)}),
			}
			root := tree.Row(tt.gap, kids...).WithSize(unit.SizeRel(1, 1))
			tree.SetRoot(root)

			e := newTestEngine(tree)
			mustLayout(t, e, RectOf(0, 0, tt.width, 100))

			container, ok := e.Rect(root.ID())
			if !ok {
				t.Fatal("row has no rect")
			}
			sum := tt.gap * float32(len(kids)-1)
			for _, k := range kids {
				r, ok := e.Rect(k.ID())
				if !ok {
					t.Fatalf("child %d has no rect", k.ID())
				}
				sum += r.Width
			}
			if sum > container.Width+Tolerance {
				t.Errorf("children span %v in a %v wide row", sum, container.Width)
			}
		})
	}
}

func TestDistribute(t *testing.T) {
	e := &Engine{cfg: DefaultConfig()}

	tests := []struct {
		name  string
		mins  []float32
		prefs []float32
		avail float32
		want  []float32
	}{
		{
			name: "everyone fits at preferred",
			mins: []float32{50, 50}, prefs: []float32{50, 50},
			avail: 200, want: []float32{50, 50},
		},
		{
			name: "headroom split by share",
			mins: []float32{50, 50}, prefs: []float32{110, 110},
			avail: 200, want: []float32{100, 100},
		},
		{
			name: "uneven headroom",
			mins: []float32{0, 0}, prefs: []float32{50, 150},
			avail: 100, want: []float32{25, 75},
		},
		{
			name: "overflow shrinks by minimum share",
			mins: []float32{100, 300}, prefs: []float32{100, 300},
			avail: 200, want: []float32{50, 150},
		},
		{
			name: "surplus stops at preferred",
			mins: []float32{10, 10}, prefs: []float32{20, 30},
			avail: 100, want: []float32{20, 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.distribute(tt.mins, tt.prefs, tt.avail)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			var sum float32
			for i := range got {
				if !approx(got[i], tt.want[i]) {
					t.Errorf("out[%d] = %v, want %v", i, got[i], tt.want[i])
				}
				sum += got[i]
			}
			if sum > tt.avail+Tolerance {
				t.Errorf("sum %v exceeds avail %v", sum, tt.avail)
			}
		})
	}
}

// Distribution is a pure function of its inputs: identical calls yield
// bit-identical outputs.
func TestDistributeDeterministic(t *testing.T) {
	e := &Engine{cfg: DefaultConfig()}
	mins := []float32{3.3, 17.9, 0, 42.123, 8.5}
	prefs := []float32{10.1, 40, 5.5, 90.75, 8.5}

	first := append([]float32(nil), e.distribute(mins, prefs, 123.456)...)
	for run := 0; run < 5; run++ {
		again := e.distribute(mins, prefs, 123.456)
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("run %d: out[%d] = %v, want bit-identical %v", run, i, again[i], first[i])
			}
		}
	}
}
