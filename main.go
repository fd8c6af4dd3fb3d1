package main

import (
	"os"

	"github.com/oyunsanaa/oyunsanaa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
