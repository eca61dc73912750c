package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/stylegen-io/stylegen/internal/cli"
)

const (
	cmdName = "stylegen"

	shortDesc = "The stylegen Command Line Interface (CLI)."
	longDesc  = `The stylegen Command Line Interface (CLI).

Stylegen compiles declarative style and palette modules into generated
source pairs: deduplicated scaled pixel constants, font and icon tables,
a runtime-switchable color palette, and distributable theme packs.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
