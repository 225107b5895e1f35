package main

import (
	"os"

	"github.com/wonny/growthmap/cmd/growthmap/commands"
)

// main is the entry point for the growthmap CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/growthmap [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
