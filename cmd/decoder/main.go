package main

import (
	"os"

	"decoder/cmd/decoder/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
