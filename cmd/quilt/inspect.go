package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quiltui/quilt"
	"github.com/quiltui/quilt/layout"
	"github.com/quiltui/quilt/text"
	"github.com/quiltui/quilt/treefile"
)

var (
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	rectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func inspectCmd() *cobra.Command {
	var (
		width   float32
		height  float32
		advance float32
		line    float32
	)
	cmd := &cobra.Command{
		Use:   "inspect <tree.toml>",
		Short: "Run a layout pass over a tree file and print the geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadLayoutConfig()
			if err != nil {
				return err
			}
			tree, names, err := treefile.Load(args[0])
			if err != nil {
				return err
			}
			measurer := &text.FixedMeasurer{Advance: advance, LineHeight: line}
			engine := layout.New(tree, measurer, cfg)
			engine.SetHooks(&printHooks{out: cmd.OutOrStdout()})
			if err := engine.Layout(layout.RectOf(0, 0, width, height)); err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), tree, engine, names)
			return nil
		},
	}
	cmd.Flags().Float32Var(&width, "width", 800, "viewport width in px")
	cmd.Flags().Float32Var(&height, "height", 600, "viewport height in px")
	cmd.Flags().Float32Var(&advance, "advance", 8, "glyph advance of the fixed measurer")
	cmd.Flags().Float32Var(&line, "line-height", 16, "line height of the fixed measurer")
	return cmd
}

type printHooks struct {
	out io.Writer
}

func (h *printHooks) OversizedApply(id quilt.WidgetID, got, allotted layout.Rect) {
	fmt.Fprintln(h.out, warnStyle.Render(
		fmt.Sprintf("widget %d overflowed: %s does not fit %s", id, got, allotted)))
}

func (h *printHooks) DepthExceeded(id quilt.WidgetID, depth int) {
	fmt.Fprintln(h.out, warnStyle.Render(
		fmt.Sprintf("widget %d exceeds max depth %d", id, depth)))
}

func printTree(out io.Writer, tree *quilt.Tree, engine *layout.Engine, names map[string]quilt.WidgetID) {
	byID := map[quilt.WidgetID]string{}
	for name, id := range names {
		byID[id] = name
	}
	root := tree.Root()
	if root == nil {
		fmt.Fprintln(out, "empty tree")
		return
	}
	var walk func(w *quilt.Widget, depth int)
	walk = func(w *quilt.Widget, depth int) {
		indent := strings.Repeat("  ", depth)
		line := indent + kindStyle.Render(w.Kind().String())
		if name := byID[w.ID()]; name != "" {
			line += " " + nameStyle.Render("#"+name)
		}
		if r, ok := engine.Rect(w.ID()); ok {
			line += " " + rectStyle.Render(r.String())
		}
		fmt.Fprintln(out, line)
		for _, id := range w.Children() {
			if c := tree.Widget(id); c != nil {
				walk(c, depth+1)
			}
		}
	}
	walk(root, 0)
	fmt.Fprintf(out, "generation %d\n", engine.Generation())
}
