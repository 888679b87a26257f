package main

import (
	"os"

	"github.com/ariel-frischer/changelogup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
