package main

import (
	"os"

	"github.com/bianoble/ai-tao/cmd/ai-tao/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
