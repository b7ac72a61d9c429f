// Command medcalcctl evaluates clinical scores from the command line using
// the same registry the server exposes over HTTP.
package main

import (
	"fmt"
	"os"

	"medcalc/internal/cli"
)

var version = "dev"

func main() {
	root, err := cli.NewRootCmd(version)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
