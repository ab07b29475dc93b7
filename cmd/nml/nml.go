package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/phanxgames/elements"
	"github.com/scott-cotton/cli"
)

func nmlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadDocument builds file into a fresh document and runs the first update,
// so everything is mounted and every background load has been applied.
func loadDocument(cfg *MainConfig, file string) (*elements.Document, error) {
	path := cfg.Config
	if path == "" {
		path = "elements.yaml"
	}
	dc, err := elements.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.Assets != "":
		dc.Assets = cfg.Assets
	case cfg.Config == "":
		dc.Assets = filepath.Dir(file)
	}
	markup, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}

	doc := elements.NewDocument(elements.NewRegistry(), dc)
	doc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: dc.Level()})))
	if _, err := doc.Build(string(markup)); err != nil {
		doc.Close()
		return nil, fmt.Errorf("error building %s: %w", file, err)
	}
	doc.Settle()
	doc.Update(0)
	return doc, nil
}
