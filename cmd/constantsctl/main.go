package main

import (
	"os"

	"github.com/pumpsui/pumpsui_service/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
