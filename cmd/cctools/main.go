// Command cctools is a thin multi-verb CLI over the dat/c2m/tws codecs, in
// the mold of cmd/screp's single-verb flag-driven tool but restructured
// onto cobra since this consumer needs distinct subcommands per format
// (SPEC_FULL.md §1).
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ChipMcCallahan/CCTools/c2m"
	"github.com/ChipMcCallahan/CCTools/dat"
	"github.com/ChipMcCallahan/CCTools/tws"
)

const (
	exitCodeFailedToRead  = 2
	exitCodeFailedToParse = 3
	exitCodeFailedToWrite = 4
	exitCodeUnknownFormat = 5
)

var logFile string

func main() {
	root := &cobra.Command{
		Use:   "cctools",
		Short: "Inspect and convert Chip's Challenge level and replay files",
	}
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "rotate diagnostic output through this file instead of stderr")

	root.AddCommand(inspectCmd(), convertCmd(), packCmd(), unpackCmd())

	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFailedToParse)
	}
}

func setupLogging() {
	if logFile == "" {
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	})
}

func sniffFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dat":
		return "dat"
	case ".c2m":
		return "c2m"
	case ".tws":
		return "tws"
	default:
		return ""
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Parse a DAT, C2M, or TWS file and print a JSON summary",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			path := args[0]
			format := sniffFormat(path)
			if format == "" {
				fmt.Fprintln(os.Stderr, "cctools: cannot determine format from extension:", path)
				os.Exit(exitCodeUnknownFormat)
			}

			b, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, "cctools: failed to read file:", err)
				os.Exit(exitCodeFailedToRead)
			}

			var value any
			switch format {
			case "dat":
				ls, err := dat.Parse(b)
				if err != nil {
					fmt.Fprintln(os.Stderr, "cctools: failed to parse DAT:", err)
					os.Exit(exitCodeFailedToParse)
				}
				value = ls
			case "c2m":
				lvl, err := c2m.Parse(b)
				if err != nil {
					fmt.Fprintln(os.Stderr, "cctools: failed to parse C2M:", err)
					os.Exit(exitCodeFailedToParse)
				}
				value = lvl
			case "tws":
				set, err := tws.Parse(b)
				if err != nil {
					fmt.Fprintln(os.Stderr, "cctools: failed to parse TWS:", err)
					os.Exit(exitCodeFailedToParse)
				}
				value = set
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(value); err != nil {
				fmt.Fprintln(os.Stderr, "cctools: failed to encode output:", err)
			}
		},
	}
}

func convertCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Round-trip a DAT or C2M file through its parser and writer",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			path := args[0]
			b, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, "cctools: failed to read file:", err)
				os.Exit(exitCodeFailedToRead)
			}

			var output []byte
			switch sniffFormat(path) {
			case "dat":
				ls, err := dat.Parse(b)
				if err != nil {
					fmt.Fprintln(os.Stderr, "cctools: failed to parse DAT:", err)
					os.Exit(exitCodeFailedToParse)
				}
				output, err = dat.Write(ls)
				if err != nil {
					fmt.Fprintln(os.Stderr, "cctools: failed to write DAT:", err)
					os.Exit(exitCodeFailedToWrite)
				}
			case "c2m":
				lvl, err := c2m.Parse(b)
				if err != nil {
					fmt.Fprintln(os.Stderr, "cctools: failed to parse C2M:", err)
					os.Exit(exitCodeFailedToParse)
				}
				output = c2m.Write(lvl)
			default:
				fmt.Fprintln(os.Stderr, "cctools: convert only supports .dat and .c2m files")
				os.Exit(exitCodeUnknownFormat)
			}

			if out == "" {
				out = path
			}
			if err := os.WriteFile(out, output, 0o644); err != nil {
				fmt.Fprintln(os.Stderr, "cctools: failed to write output:", err)
				os.Exit(exitCodeFailedToWrite)
			}
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (defaults to overwriting the input)")
	return cmd
}

func packCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack [file]",
		Short: "Compress a raw byte file with the C2M packer",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			b, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "cctools: failed to read file:", err)
				os.Exit(exitCodeFailedToRead)
			}
			os.Stdout.Write(c2m.Pack(b))
		},
	}
}

func unpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack [file]",
		Short: "Decompress a C2M-packed byte file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			b, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "cctools: failed to read file:", err)
				os.Exit(exitCodeFailedToRead)
			}
			os.Stdout.Write(c2m.Unpack(b))
		},
	}
}
