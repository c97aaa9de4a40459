package main

import (
	"os"

	"platecore/cmd/platectl/commands"
)

func main() {
	// Errors are already reported by the failing command.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
