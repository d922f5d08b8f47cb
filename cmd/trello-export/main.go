package main

import (
	"os"

	"github.com/BuzzLyutic/trello-export/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
