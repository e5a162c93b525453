// gamma is a command-line client for the Gamma Generate API.
package main

import (
	"os"

	"gamma-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
