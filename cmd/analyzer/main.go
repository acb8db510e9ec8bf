package main

import (
	"fmt"
	"os"

	"github.com/adityapatri279312/excel-data-analyzer/cmd/analyzer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
