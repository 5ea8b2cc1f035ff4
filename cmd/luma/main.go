// Luma - A WCAG contrast checker for UI colour palettes
//
// Luma checks, corrects and generates button-state colour palettes
// against the WCAG 2.2 contrast thresholds.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/joho/godotenv"

	"github.com/jmylchreest/luma/internal/cli"
)

func main() {
	// Optional .env file for the LUMA_* settings. A missing file is fine.
	_ = godotenv.Load()

	cli.Execute()
}
