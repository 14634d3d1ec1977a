// Package main is the entry point for the protsite CLI.
package main

import (
	"os"

	"github.com/f3rmion/protsite/cmd/protsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
