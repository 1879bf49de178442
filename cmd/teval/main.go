package main

import (
	"os"

	"github.com/proptools/teval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
