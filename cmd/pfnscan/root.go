package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagesanity/pfnscan/cmd/pfnscan/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logFile string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "pfnscan",
	Short: "Find repeated page frame numbers in pagemap dumps",
	Long: `pfnscan reads line-oriented dumps (by default the output of the pagemap
tool), extracts the key between two markers on every line, and reports each
key that has already been seen, followed by the total number of repeats.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Print only the summary")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Append JSON diagnostics to this file")
}

func execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", "error", err)
		printError("%v\n", err)
	}
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func initLogging() error {
	// Info and above go to --log-file; --verbose adds debug records and a
	// stderr copy.
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	closer, err := logger.Init(logger.Options{
		Enabled: verbose,
		LogFile: logFile,
		Level:   level,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	closeLog = func() error {
		closeLog = func() error { return nil }
		return closer()
	}
	return nil
}

// Helper functions for output

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled.
// It writes to stderr so the report on stdout stays machine-readable.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
