package main

import (
	"os"

	"github.com/cashlens-dev/cashlens/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
