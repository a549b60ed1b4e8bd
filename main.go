package main

import (
	"os"

	"github.com/spaceshare/spaceshare/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
