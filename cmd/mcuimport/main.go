package main

import (
	"os"

	"github.com/reoring/mcuschema/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
