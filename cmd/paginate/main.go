package main

import (
	"fmt"
	"os"

	"github.com/stokpanel/paginate/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func run() error {
	return cli.NewRootCmd(version).Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
