package main

import (
	"os"

	"github.com/bianoble/autobackup/cmd/autobackup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
