package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/phanxgames/elements"
	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: tree takes exactly one file", cli.ErrUsage)
	}
	doc, err := loadDocument(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	defer doc.Close()
	writeTree(cc.Out, newColors(cfg.colored(cc.Out)), doc.Root(), 0, cfg.Text)
	return nil
}

func writeTree(w io.Writer, c *colors, e *elements.Element, depth int, text bool) {
	indent := strings.Repeat("  ", depth)
	if e.NodeType() == elements.TextNodeType {
		if text {
			fmt.Fprintf(w, "%s%s\n", indent, c.text(fmt.Sprintf("%q", e.NodeValue())))
		}
		return
	}
	b := e.Bounds()
	fmt.Fprintf(w, "%s%s %s", indent, c.tag("<"+e.TagName()+">"),
		c.value(fmt.Sprintf("%d,%d %dx%d", b.X, b.Y, b.Width, b.Height)))
	if t := e.TextContent(); t != "" {
		fmt.Fprintf(w, " %s", c.text(fmt.Sprintf("%q", t)))
	}
	if e.Kind() == elements.KindImage && e.Src() != "" {
		fmt.Fprintf(w, " %s=%s", c.attr("src"), c.value(e.Src()))
	}
	fmt.Fprintln(w)
	for _, child := range e.Children() {
		writeTree(w, c, child, depth+1, text)
	}
}
