package main

import (
	"os"

	"github.com/parallax-labs/meetlens/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
