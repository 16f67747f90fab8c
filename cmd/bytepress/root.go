package main

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags.
	inputPath  string
	outputPath string
	quiet      bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bytepress",
	Short: "Compress and decompress with snappy, lz4, zstd, gzip, brotli, bzip2, deflate and xz",
	Long: `Bytepress compresses and decompresses files and pipes with a family
of codecs behind one interface.

Without --input or --output it reads stdin and writes stdout, so it
drops into pipelines. A summary with sizes, ratio and throughput goes
to stderr unless --quiet.

Examples:
  # Compress a file with zstd at level 19
  bytepress compress zstd --input corpus.txt --output corpus.txt.zst --level 19

  # Decompress from a pipe
  cat corpus.txt.zst | bytepress decompress zstd > corpus.txt

  # List supported codecs
  bytepress codecs`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "input file (default stdin)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the summary")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
