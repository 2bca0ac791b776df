package main

import (
	"os"

	"phone-extractor/cmd/extract-phones/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
