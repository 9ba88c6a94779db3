package main

import (
	"os"

	"tradescan/cmd/tradescan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
