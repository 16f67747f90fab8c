package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bytepress/bytepress"
)

var compressCmd = &cobra.Command{
	Use:   "compress CODEC",
	Short: "Compress stdin or --input with the given codec",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], true)
	},
}

var decompressCmd = &cobra.Command{
	Use:   "decompress CODEC",
	Short: "Decompress stdin or --input with the given codec",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], false)
	},
}

var codecsCmd = &cobra.Command{
	Use:   "codecs",
	Short: "List supported codecs",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range bytepress.CodecIDs() {
			fmt.Println(id)
		}
	},
}

var (
	level     int
	outputLen int
)

func init() {
	compressCmd.Flags().IntVarP(&level, "level", "l", -1, "compression level (codec default if unset)")
	decompressCmd.Flags().IntVar(&outputLen, "output-len", 0, "decompressed size, required by block formats that do not record it")
	rootCmd.AddCommand(compressCmd, decompressCmd, codecsCmd)
}

func run(codecName string, compressing bool) error {
	id, err := bytepress.ParseCodecID(codecName)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()
	}
	client := bytepress.New(bytepress.WithLogger(logger))

	input, inputSize, err := openInput()
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := openOutput()
	if err != nil {
		return err
	}
	defer output.Close()

	start := time.Now()
	var written int64
	if compressing {
		var opts []bytepress.Option
		if level >= 0 {
			opts = append(opts, bytepress.WithLevel(level))
		}
		written, err = client.CompressInto(id, input, output, opts...)
	} else {
		var opts []bytepress.Option
		if outputLen > 0 {
			opts = append(opts, bytepress.WithOutputLen(outputLen))
		}
		written, err = client.DecompressInto(id, input, output, opts...)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if !quiet {
		printSummary(os.Stderr, id, compressing, inputSize, written, elapsed)
	}
	return nil
}

// openInput returns the input stream and its size in bytes, or -1 for
// stdin.
func openInput() (*os.File, int64, error) {
	if inputPath == "" {
		return os.Stdin, -1, nil
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, 0, fmt.Errorf("opening input: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat input: %w", err)
	}
	return f, info.Size(), nil
}

func openOutput() (*os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	return f, nil
}

// printSummary writes the sizes, ratio and throughput to w. The caller
// points it at stderr so the data path through stdout stays clean.
func printSummary(w io.Writer, id bytepress.CodecID, compressing bool, inputSize, written int64, elapsed time.Duration) {
	action := "compressed"
	if !compressing {
		action = "decompressed"
	}
	fmt.Fprintf(w, "%s: %s %s in %s\n", id, action, sizeOf(inputSize), elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "output: %s\n", sizeOf(written))
	if inputSize > 0 && written > 0 {
		ratio := float64(inputSize) / float64(written)
		if !compressing {
			ratio = float64(written) / float64(inputSize)
		}
		fmt.Fprintf(w, "ratio: %.2fx\n", ratio)
	}
	if secs := elapsed.Seconds(); secs > 0 && inputSize > 0 {
		fmt.Fprintf(w, "throughput: %s/s\n", sizeOf(int64(float64(inputSize)/secs)))
	}
}

// sizeOf renders a byte count human-readably; -1 means unknown.
func sizeOf(n int64) string {
	if n < 0 {
		return "?"
	}
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
