package main

import (
	"os"

	"addressbook/cmd/addressbook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
