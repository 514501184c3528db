// Package main is the entry point for feedctl
package main

import (
	"os"

	"essential-feed-api/cmd/feedctl/cmd"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	root := cmd.NewRootCommand(os.Stdout)
	root.Version = version
	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
