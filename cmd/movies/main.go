package main

import (
	"os"

	"github.com/aussiebroadwan/movies/cmd/movies/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
