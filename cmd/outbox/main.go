package main

import (
	"os"

	"outbox/cmd/outbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
