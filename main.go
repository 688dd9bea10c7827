package main

import (
	"fmt"
	"os"

	"github.com/fbratu/linkdu/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "linkdu:", err)
		os.Exit(1)
	}
}
