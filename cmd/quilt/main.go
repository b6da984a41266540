// Command quilt is the layout tooling entry point. It loads widget trees
// from TOML files and runs layout passes over them without a renderer,
// for inspecting and debugging layouts from the terminal.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}
