// Package main is the entry point for the placehound CLI.
package main

import (
	"os"

	"github.com/placehound/placehound/cmd/placehound/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
