package main

import (
	"os"

	"tradedash/cmd/tradedash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
