package main

import (
	"os"

	"github.com/njchilds90/symexpr/cmd/symexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
