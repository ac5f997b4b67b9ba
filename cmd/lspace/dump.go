package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	lspace "github.com/grindlemire/go-lspace"
)

var (
	kindColor  = lipgloss.Color("#7D56F4")
	rectColor  = lipgloss.Color("#666666")
	textColor  = lipgloss.Color("#04B575")
	headerText = lipgloss.Color("#00D7FF")

	kindStyle   = lipgloss.NewStyle().Bold(true).Foreground(kindColor)
	rectStyle   = lipgloss.NewStyle().Foreground(rectColor)
	textStyle   = lipgloss.NewStyle().Foreground(textColor)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(headerText)
)

// runDump implements the dump subcommand.
// It lays the scene out once and prints every geometry with its
// parent-relative rectangle.
func runDump(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	var sf sceneFlags
	sf.register(fs)
	width := fs.Int("width", -1, "Available width (default from config)")
	height := fs.Int("height", -1, "Available height (default from config)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg, root, closeLog, err := sf.load()
	if err != nil {
		return err
	}
	defer closeLog()

	if *width < 0 {
		*width = cfg.Render.Width
	}
	if *height < 0 {
		*height = cfg.Render.Height
	}

	opts, err := cfg.AreaOptions()
	if err != nil {
		return err
	}
	area, err := lspace.NewArea(root, opts...)
	if err != nil {
		return err
	}
	defer area.Destroy()

	if err := area.OnSizeAllocate(*width, *height); err != nil {
		return err
	}

	g := area.Geometry()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s at %dx%d: %d boxes", sf.sceneName, *width, *height, g.Count())))
	dumpGeometry(out, g)
	return nil
}

// dumpGeometry writes one line per geometry, indented by depth, followed
// by the wrapped lines of each text node.
func dumpGeometry(w io.Writer, root *lspace.Geometry) {
	root.Walk(func(g *lspace.Geometry, _ lspace.Rect, depth int) bool {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(w, "%s%s %s%s\n", indent,
			kindStyle.Render(g.Pres.Kind().String()),
			rectStyle.Render(formatRect(g.Rect)),
			describe(g))

		for _, l := range g.Lines {
			fmt.Fprintf(w, "%s  %s\n", indent, textStyle.Render(fmt.Sprintf("%q", l.Text)))
		}
		return true
	})
}

func formatRect(r lspace.Rect) string {
	return fmt.Sprintf("%gx%g @ (%g, %g)", r.Width, r.Height, r.X, r.Y)
}

// describe returns the node-specific details shown after the rectangle.
func describe(g *lspace.Geometry) string {
	switch n := g.Pres.(type) {
	case *lspace.TextNode:
		s := n.Style()
		return fmt.Sprintf(" %s %gpt, %d line(s)", s.Family(), s.Size(), len(g.Lines))
	case *lspace.BorderNode:
		b := n.Border()
		m := b.Margins()
		return fmt.Sprintf(" %s margins %g/%g/%g/%g", b.Kind(), m.Top, m.Right, m.Bottom, m.Left)
	case *lspace.ColumnNode:
		return fmt.Sprintf(" spacing %g", n.YSpacing())
	case *lspace.RowNode:
		return fmt.Sprintf(" spacing %g", n.XSpacing())
	case *lspace.FlowNode:
		return fmt.Sprintf(" indent %s, %d line(s)", n.Indent(), len(g.FlowLines))
	default:
		return ""
	}
}
