package main

import (
	"os"

	"github.com/osforge/calago/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
