package main

import (
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/phanxgames/elements"
	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: render takes exactly one file", cli.ErrUsage)
	}
	file := args[0]
	doc, err := loadDocument(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	defer doc.Close()

	frames := max(cfg.Frames, 1)
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", cfg.Script, err)
		}
		s, err := elements.LoadScript(data)
		if err != nil {
			return err
		}
		doc.SetScript(s)
		for !s.Done() {
			doc.Update(1.0 / 60)
		}
	}
	for i := 0; i < frames; i++ {
		doc.Settle()
		doc.Update(1.0 / 60)
	}
	doc.Paint()

	out := cfg.Out
	if out == "" {
		out = strings.TrimSuffix(file, ".nml") + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, doc.Composite()); err != nil {
		f.Close()
		return fmt.Errorf("error encoding %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, out)
	return nil
}
