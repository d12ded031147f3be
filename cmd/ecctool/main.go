package main

import (
	"os"

	"github.com/smallyu/go-eccore/cmd/ecctool/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
