package main

import (
	"os"

	"github.com/orifhon74/task3/cmd/fairdice/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
