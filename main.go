package main

import (
	"os"

	"github.com/reqlens/srsbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
