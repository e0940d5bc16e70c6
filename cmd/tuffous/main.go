package main

import (
	"fmt"
	"os"

	"github.com/td0m/tuffous/cmd/tuffous/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
