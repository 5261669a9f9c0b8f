package main

import (
	"os"

	"year-progress/cmd/year-progress/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
