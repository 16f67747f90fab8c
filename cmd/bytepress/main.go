// Package main provides the bytepress CLI tool for compressing and
// decompressing files and pipes with any supported codec.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
