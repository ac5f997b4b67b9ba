package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	lspace "github.com/grindlemire/go-lspace"
	"github.com/grindlemire/go-lspace/internal/config"
)

const sampleText = `Presentations are immutable trees of text, borders, columns, rows and flows. ` +
	`Laying one out against a width wraps its text and flowed children greedily, ` +
	`and drawing paints borders before the content they surround.

Resize the viewport and the whole tree is laid out again from scratch, ` +
	`so every size gets geometry of its own while the tree itself is shared.`

// scene builds a presentation from the configuration and body text.
type scene struct {
	name  string
	desc  string
	build func(cfg config.Config, body string) (lspace.Pres, error)
}

var scenes = []scene{
	{name: "hello", desc: "bordered title above a body of text", build: buildHello},
	{name: "paragraphs", desc: "indented paragraphs, one per blank-line separated block", build: buildParagraphs},
	{name: "borders", desc: "solid and filled borders with rounding and backgrounds", build: buildBorders},
}

func findScene(name string) (scene, error) {
	i := slices.IndexFunc(scenes, func(s scene) bool { return s.name == name })
	if i < 0 {
		names := make([]string, len(scenes))
		for j, s := range scenes {
			names[j] = s.name
		}
		return scene{}, fmt.Errorf("unknown scene %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return scenes[i], nil
}

func listScenes(w io.Writer) {
	for _, s := range scenes {
		fmt.Fprintf(w, "  %-12s %s\n", s.name, s.desc)
	}
}

// readBody returns the contents of path, or the sample text if path is empty.
func readBody(path string) (string, error) {
	if path == "" {
		return sampleText, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}
	return string(data), nil
}

var blankLines = regexp.MustCompile(`\n[ \t]*\n`)

// splitParagraphs splits text on blank lines, dropping empty paragraphs.
func splitParagraphs(text string) []string {
	var paras []string
	for _, p := range blankLines.Split(strings.ReplaceAll(text, "\r\n", "\n"), -1) {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

func buildHello(cfg config.Config, body string) (lspace.Pres, error) {
	style, err := cfg.TextStyle()
	if err != nil {
		return nil, err
	}
	titleStyle, err := lspace.NewTextStyle(lspace.DefaultFontFamily, false, false, 64, style.Colour())
	if err != nil {
		return nil, err
	}
	grey, err := lspace.NewColour(0.6, 0.6, 0.6, 1)
	if err != nil {
		return nil, err
	}
	border, err := lspace.SolidBorder(1.5, 3, 4, grey, nil)
	if err != nil {
		return nil, err
	}

	title, err := lspace.NewText("Hello world", titleStyle)
	if err != nil {
		return nil, err
	}
	framed, err := border.Surround(title)
	if err != nil {
		return nil, err
	}
	text, err := lspace.NewText(body, style)
	if err != nil {
		return nil, err
	}
	return lspace.NewColumn([]lspace.Pres{framed, text}, 5)
}

func buildParagraphs(cfg config.Config, body string) (lspace.Pres, error) {
	style, err := cfg.TextStyle()
	if err != nil {
		return nil, err
	}
	indent, err := cfg.Indent()
	if err != nil {
		return nil, err
	}

	var paras []lspace.Pres
	for _, p := range splitParagraphs(body) {
		flow, err := lspace.Paragraph(p, style, indent)
		if err != nil {
			return nil, err
		}
		paras = append(paras, flow)
	}
	return lspace.NewColumn(paras, cfg.Text.ParagraphSpacing)
}

func buildBorders(cfg config.Config, body string) (lspace.Pres, error) {
	style, err := cfg.TextStyle()
	if err != nil {
		return nil, err
	}
	pale, err := lspace.HexColour("#dde6f0")
	if err != nil {
		return nil, err
	}
	accent, err := lspace.HexColour("#3a6ea5")
	if err != nil {
		return nil, err
	}
	warm, err := lspace.HexColour("#f5e6c8")
	if err != nil {
		return nil, err
	}

	plain, err := lspace.SolidBorder(1, 4, 0, lspace.Black, nil)
	if err != nil {
		return nil, err
	}
	rounded, err := lspace.SolidBorder(2, 6, 8, accent, &pale)
	if err != nil {
		return nil, err
	}
	filled, err := lspace.FilledBorder(12, 12, 6, 6, 10, &warm)
	if err != nil {
		return nil, err
	}

	boxes := make([]lspace.Pres, 0, 4)
	for _, c := range []struct {
		label  string
		border lspace.GraphicsBorder
	}{{"solid", plain}, {"rounded", rounded}, {"filled", filled}} {
		text, err := lspace.NewText(c.label, style)
		if err != nil {
			return nil, err
		}
		box, err := c.border.Surround(text)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, box)
	}

	nestedText, err := lspace.NewText("nested", style)
	if err != nil {
		return nil, err
	}
	inner, err := filled.Surround(nestedText)
	if err != nil {
		return nil, err
	}
	outer, err := rounded.Surround(inner)
	if err != nil {
		return nil, err
	}
	boxes = append(boxes, outer)

	row, err := lspace.NewRow(boxes, 10)
	if err != nil {
		return nil, err
	}

	var first string
	if paras := splitParagraphs(body); len(paras) > 0 {
		first = paras[0]
	}
	var words []lspace.Pres
	for _, w := range strings.Fields(first) {
		text, err := lspace.NewText(w, style)
		if err != nil {
			return nil, err
		}
		box, err := plain.Surround(text)
		if err != nil {
			return nil, err
		}
		words = append(words, box)
	}
	flow, err := lspace.NewFlow(words, 6, 6, lspace.NoIndent())
	if err != nil {
		return nil, err
	}
	return lspace.NewColumn([]lspace.Pres{row, flow}, 16)
}
