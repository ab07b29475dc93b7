package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtMarkup(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no files given", cli.ErrUsage)
	}
	colors := newColors(cfg.colored(cc.Out))
	for _, file := range args {
		if err := fmtFile(cfg, cc.Out, colors, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, w io.Writer, colors *colors, file string) error {
	doc, err := loadDocument(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	defer doc.Close()
	var canon strings.Builder
	for _, e := range doc.Root().Children() {
		canon.WriteString(e.NMLContent(true))
		canon.WriteByte('\n')
	}
	if !cfg.Diff {
		for line := range strings.Lines(canon.String()) {
			fmt.Fprintln(w, colors.markup(strings.TrimSuffix(line, "\n")))
		}
		return nil
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	writeDiff(w, colors, file, string(src), canon.String())
	return nil
}

// writeDiff prints a line diff from src to canon, or nothing when they match.
func writeDiff(w io.Writer, colors *colors, file, src, canon string) {
	if src == canon {
		return
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(src, canon)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	fmt.Fprintf(w, "--- %s\n+++ %s (canonical)\n", file, file)
	for _, d := range diffs {
		prefix, paint := " ", plain
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint = "+", colors.added
		case diffpatch.DiffDelete:
			prefix, paint = "-", colors.removed
		}
		for line := range strings.Lines(d.Text) {
			fmt.Fprintln(w, paint(prefix+strings.TrimSuffix(line, "\n")))
		}
	}
}

type colors struct {
	tag, attr, value, text func(string, ...any) string
	added, removed         func(string, ...any) string
}

func newColors(enabled bool) *colors {
	if !enabled {
		return &colors{tag: plain, attr: plain, value: plain, text: plain, added: plain, removed: plain}
	}
	c := &colors{
		tag:     color.RGB(74, 92, 138).SprintfFunc(),
		attr:    color.RGB(196, 96, 16).SprintfFunc(),
		value:   color.RGB(8, 196, 16).SprintfFunc(),
		text:    color.CyanString,
		added:   color.GreenString,
		removed: color.RedString,
	}
	for _, f := range []*func(string, ...any) string{&c.tag, &c.attr, &c.value, &c.text, &c.added, &c.removed} {
		g := *f
		// values are printed verbatim, never as format strings
		*f = func(v string, _ ...any) string { return g("%s", v) }
	}
	// color objects consult NoColor themselves; keep them on when forced
	color.NoColor = false
	return c
}

func plain(v string, _ ...any) string { return v }

var (
	tagRe  = regexp.MustCompile(`</?[a-z0-9]+|/?>`)
	attrRe = regexp.MustCompile(`([A-Za-z_:][-A-Za-z0-9_:.]*)="([^"]*)"`)
)

// markup colorizes serialized NML: tags, attribute names, attribute values
// and the text between tags.
func (c *colors) markup(s string) string {
	var out []byte
	inTag := false
	last := 0
	for _, loc := range tagRe.FindAllStringIndex(s, -1) {
		seg := s[last:loc[0]]
		if inTag {
			out = append(out, c.attrs(seg)...)
		} else if seg != "" {
			out = append(out, c.text(seg)...)
		}
		tok := s[loc[0]:loc[1]]
		out = append(out, c.tag(tok)...)
		inTag = tok[len(tok)-1] != '>'
		last = loc[1]
	}
	if last < len(s) {
		out = append(out, c.text(s[last:])...)
	}
	return string(out)
}

func (c *colors) attrs(s string) string {
	return attrRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := attrRe.FindStringSubmatch(m)
		return c.attr(sub[1]) + "=" + c.value(`"`+sub[2]+`"`)
	})
}
