// Command nml works with NML markup outside a window: it renders documents to
// PNG, prints their canonical markup and dumps the laid-out element tree.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
