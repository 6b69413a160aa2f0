package main

import (
	"os"

	"github.com/notargets/quadindex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
