// Package treefile loads quilt widget trees from TOML descriptions, for
// tooling and tests that want a tree without writing Go.
package treefile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/quiltui/quilt"
	"github.com/quiltui/quilt/text"
	"github.com/quiltui/quilt/unit"
)

// Node is the TOML shape of one widget. Size fields accept "auto", a
// bare pixel number, "px:N", "rel:F" (fraction of the content area) or
// "root:F" (fraction of the root area).
type Node struct {
	Kind string `toml:"kind"`
	Name string `toml:"name"`

	Width     string `toml:"width"`
	Height    string `toml:"height"`
	MinWidth  string `toml:"min_width"`
	MinHeight string `toml:"min_height"`
	MaxWidth  string `toml:"max_width"`
	MaxHeight string `toml:"max_height"`

	Margin  float32 `toml:"margin"`
	Padding float32 `toml:"padding"`

	Direction string  `toml:"direction"`
	Gap       float32 `toml:"gap"`
	Justify   string  `toml:"justify"`
	Align     string  `toml:"align"`
	AlignX    string  `toml:"align_x"`
	AlignY    string  `toml:"align_y"`

	Text     string  `toml:"text"`
	Family   string  `toml:"family"`
	TextSize float32 `toml:"text_size"`

	OffsetX string  `toml:"offset_x"`
	OffsetY string  `toml:"offset_y"`
	AnchorX float32 `toml:"anchor_x"`
	AnchorY float32 `toml:"anchor_y"`
	Anchor  int     `toml:"anchor"`

	Children []Node `toml:"children"`
}

// File is the top-level TOML document.
type File struct {
	Widget Node `toml:"widget"`
}

// Load reads a tree description and builds it into a fresh Tree. The
// returned names map carries any "name" fields for lookups by tooling.
func Load(path string) (*quilt.Tree, map[string]quilt.WidgetID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load tree: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse tree %s: %w", path, err)
	}
	tree := quilt.NewTree()
	names := map[string]quilt.WidgetID{}
	root, err := build(tree, &f.Widget, names)
	if err != nil {
		return nil, nil, err
	}
	tree.SetRoot(root)
	return tree, names, nil
}

func build(tree *quilt.Tree, n *Node, names map[string]quilt.WidgetID) (*quilt.Widget, error) {
	kind, err := parseKind(n.Kind)
	if err != nil {
		return nil, err
	}
	w := tree.New(kind)
	if n.Name != "" {
		names[n.Name] = w.ID()
	}

	size, err := parseSize(n.Width, n.Height)
	if err != nil {
		return nil, err
	}
	w.WithSize(size)
	if mn, err := parseSize(n.MinWidth, n.MinHeight); err != nil {
		return nil, err
	} else if !mn.IsAuto() {
		w.WithMinSize(mn)
	}
	if mx, err := parseSize(n.MaxWidth, n.MaxHeight); err != nil {
		return nil, err
	} else if !mx.IsAuto() {
		w.WithMaxSize(mx)
	}
	if n.Margin != 0 {
		w.WithMargin(quilt.UniformEdges(n.Margin))
	}
	if n.Padding != 0 {
		w.WithPadding(quilt.UniformEdges(n.Padding))
	}

	switch kind {
	case quilt.KindText:
		w.WithText(n.Text).WithStyle(text.Style{Family: n.Family, Size: n.TextSize})
	case quilt.KindFlow:
		opts := quilt.FlowOptions{Gap: n.Gap}
		if opts.Direction, err = parseDirection(n.Direction); err != nil {
			return nil, err
		}
		if opts.Justify, err = parseJustify(n.Justify); err != nil {
			return nil, err
		}
		if opts.Align, err = parseAlign(n.Align, quilt.AlignStretch); err != nil {
			return nil, err
		}
		w.WithFlow(opts)
	case quilt.KindStack:
		var opts quilt.StackOptions
		if opts.AlignX, err = parseAlign(n.AlignX, quilt.AlignStart); err != nil {
			return nil, err
		}
		if opts.AlignY, err = parseAlign(n.AlignY, quilt.AlignStart); err != nil {
			return nil, err
		}
		w.WithStack(opts)
	}

	for i := range n.Children {
		c, err := build(tree, &n.Children[i], names)
		if err != nil {
			return nil, err
		}
		if offs, err := parseSize(n.Children[i].OffsetX, n.Children[i].OffsetY); err != nil {
			return nil, err
		} else if !offs.IsAuto() {
			c.WithOffset(offs)
		}
		if n.Children[i].AnchorX != 0 || n.Children[i].AnchorY != 0 {
			c.WithAnchor(quilt.Anchor{X: n.Children[i].AnchorX, Y: n.Children[i].AnchorY})
		}
		w.Append(c)
	}
	if kind == quilt.KindFloat && len(w.Children()) > 0 {
		kids := w.Children()
		if n.Anchor < 0 || n.Anchor >= len(kids) {
			return nil, fmt.Errorf("float %q: anchor index %d out of range", n.Name, n.Anchor)
		}
		w.WithFloat(quilt.FloatOptions{Anchor: kids[n.Anchor]})
	}
	return w, nil
}

func parseKind(s string) (quilt.Kind, error) {
	switch strings.ToLower(s) {
	case "", "box":
		return quilt.KindBox, nil
	case "text":
		return quilt.KindText, nil
	case "flow", "row", "column":
		return quilt.KindFlow, nil
	case "stack":
		return quilt.KindStack, nil
	case "float":
		return quilt.KindFloat, nil
	default:
		return 0, fmt.Errorf("unknown widget kind %q", s)
	}
}

func parseDirection(s string) (quilt.Direction, error) {
	switch strings.ToLower(s) {
	case "", "row":
		return quilt.Row, nil
	case "column", "col":
		return quilt.Column, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseJustify(s string) (quilt.Justify, error) {
	switch strings.ToLower(s) {
	case "", "start":
		return quilt.JustifyStart, nil
	case "center":
		return quilt.JustifyCenter, nil
	case "end":
		return quilt.JustifyEnd, nil
	case "between":
		return quilt.JustifyBetween, nil
	default:
		return 0, fmt.Errorf("unknown justify %q", s)
	}
}

func parseAlign(s string, def quilt.Align) (quilt.Align, error) {
	switch strings.ToLower(s) {
	case "":
		return def, nil
	case "start":
		return quilt.AlignStart, nil
	case "center":
		return quilt.AlignCenter, nil
	case "end":
		return quilt.AlignEnd, nil
	case "stretch":
		return quilt.AlignStretch, nil
	default:
		return 0, fmt.Errorf("unknown align %q", s)
	}
}

func parseSize(w, h string) (unit.Size, error) {
	uw, err := ParseUnit(w)
	if err != nil {
		return unit.Size{}, err
	}
	uh, err := ParseUnit(h)
	if err != nil {
		return unit.Size{}, err
	}
	return unit.Size{W: uw, H: uh}, nil
}

// ParseUnit parses one size field. Empty and "auto" mean auto; a bare
// number is pixels.
func ParseUnit(s string) (unit.Unit, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "auto":
		return unit.Auto(), nil
	case strings.HasPrefix(s, "px:"):
		return parseAs(s[3:], unit.Px)
	case strings.HasPrefix(s, "rel:"):
		return parseAs(s[4:], unit.Rel)
	case strings.HasPrefix(s, "root:"):
		return parseAs(s[5:], unit.RootRel)
	default:
		return parseAs(s, unit.Px)
	}
}

func parseAs(s string, mk func(float32) unit.Unit) (unit.Unit, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return unit.Unit{}, fmt.Errorf("bad size value %q: %w", s, err)
	}
	return mk(float32(v)), nil
}
