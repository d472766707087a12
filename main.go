package main

import (
	"os"

	"github.com/decker502/resignation/internal/cli"
	"github.com/decker502/resignation/pkg/embedded"
)

func main() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
