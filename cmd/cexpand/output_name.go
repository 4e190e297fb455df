package main

import (
	"path/filepath"
	"strings"
)

// outputNameFromPath derives the destination path by swapping the source
// extension for the configured suffix: "src/main.c" -> "src/main.expanded.c".
func outputNameFromPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + suffix
}
