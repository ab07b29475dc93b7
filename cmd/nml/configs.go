package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config string `cli:"name=config desc='document configuration (yaml)'"`
	Assets string `cli:"name=assets desc='directory src attributes resolve against'"`
	Color  bool   `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// colored reports whether output to w should be colorized: forced with
// -color, otherwise only when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type RenderConfig struct {
	*MainConfig

	Out    string `cli:"name=out desc='output PNG path (default: input name with .png)'"`
	Script string `cli:"name=script desc='JSON input script to run before capturing'"`
	Frames int    `cli:"name=frames desc='updates to run before capturing'"`

	Render *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Diff bool `cli:"name=d desc='print a diff against the canonical form instead'"`

	Fmt *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Text bool `cli:"name=text desc='include text nodes'"`

	Tree *cli.Command
}
