package main

import (
	"os"

	"github.com/starling-tools/starling-export/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
