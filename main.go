// Package main is the entry point for the vimkit demo CLI.
package main

import (
	"fmt"
	"os"

	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vimkit/cmd"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	zone.NewGlobal()
	cmd.SetVersion(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
