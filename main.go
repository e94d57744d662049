package main

import (
	"os"

	"github.com/horizonedu/starbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
