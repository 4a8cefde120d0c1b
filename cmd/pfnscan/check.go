package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagesanity/pfnscan/cmd/pfnscan/logger"
	"github.com/pagesanity/pfnscan/internal/extract"
	"github.com/pagesanity/pfnscan/internal/linesrc"
	"github.com/pagesanity/pfnscan/pkg/dupscan"
)

var (
	checkStart      string
	checkEnd        string
	checkSentinel   string
	checkKeyPattern string
	checkEncoding   string
	checkStrict     bool
)

func init() {
	cmd := newCheckCmd()
	cmd.Flags().StringVar(&checkStart, "start", extract.DefaultStart, "Marker preceding the key")
	cmd.Flags().StringVar(&checkEnd, "end", extract.DefaultEnd, "Marker following the key")
	cmd.Flags().
		StringVar(&checkSentinel, "sentinel", extract.DefaultSentinel, "Key to ignore entirely (empty to track every key)")
	cmd.Flags().
		StringVar(&checkKeyPattern, "key-pattern", "", "Regexp narrowing the text between the markers to the key")
	cmd.Flags().StringVar(&checkEncoding, "encoding", "utf-8", "Input encoding (utf-8, latin1, windows-1252, utf-16, utf-16le, utf-16be)")
	cmd.Flags().BoolVar(&checkStrict, "strict", false, "Fail on the first line missing a marker instead of skipping it")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file ...]",
		Short: "Report repeated keys",
		Long: `The check command prints the key of every line, marking keys already seen
with " match!", then prints "<n> matches". With no files, or "-", it reads
standard input. Several files are scanned as one stream.

Lines whose key is the sentinel ("0", an absent page) are ignored. Lines
missing a marker are skipped (logged with --verbose) unless --strict is set.

Example:
  ./pagemap $PID 0x7f0000000000 0x7f0000100000 | pfnscan check
  pfnscan check victim.out aggressor.out
  pfnscan check dump.out --start "id=" --end ";" --sentinel ""
  pfnscan check dump.out --key-pattern '^[0-9a-f]+' --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

func runCheck(args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{linesrc.StdinPath}
	}

	var (
		current string
		offset  int
	)
	opts := dupscan.Options{
		Start:      checkStart,
		End:        checkEnd,
		Sentinel:   checkSentinel,
		KeyPattern: checkKeyPattern,
		Strict:     checkStrict,
		OnMalformed: func(line int, text string, err error) {
			logger.Warn("skipping malformed line",
				"file", displayName(current), "line", line-offset, "reason", err)
			logger.Debug("malformed line text", "text", text)
		},
	}
	sc, err := dupscan.New(opts)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	rep := newReporter()
	srcOpts := linesrc.Options{Encoding: checkEncoding, MaxLineSize: linesrc.DefaultMaxLineSize}

	var res dupscan.Result
	for _, path := range paths {
		current = path
		printVerbose("Scanning %s\n", displayName(path))

		res, err = scanFile(sc, path, srcOpts, rep)
		if err != nil {
			flushPartial(rep)
			var lineErr *dupscan.LineError
			if errors.As(err, &lineErr) {
				return fmt.Errorf("%s:%d: %w", displayName(path), lineErr.Line-offset, lineErr.Err)
			}
			return fmt.Errorf("%s: %w", displayName(path), err)
		}
		logger.Debug("scanned input", "file", displayName(path), "lines", res.Lines-offset)
		offset = res.Lines
	}

	if err := rep.Summary(res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("scan complete",
		"lines", res.Lines, "keys", res.Emitted, "matches", res.Count(),
		"excluded", res.Excluded, "malformed", res.Malformed)
	if res.Malformed > 0 {
		printVerbose("Skipped %d malformed line(s)\n", res.Malformed)
	}
	return nil
}

// scanFile feeds one input through the shared scanner.
func scanFile(sc *dupscan.Scanner, path string, opts linesrc.Options, rep dupscan.Reporter) (dupscan.Result, error) {
	src, closer, err := linesrc.Open(path, opts)
	if err != nil {
		return sc.Result(), err
	}
	defer closer.Close()

	res, err := sc.Scan(src.All(), rep.Event)
	if err != nil {
		return res, err
	}
	if err := src.Err(); err != nil {
		return res, fmt.Errorf("failed to read input: %w", err)
	}
	return res, nil
}

func newReporter() dupscan.Reporter {
	if jsonOut {
		jw := dupscan.NewJSONWriter(os.Stdout)
		jw.Quiet = quiet
		return jw
	}
	tw := dupscan.NewTextWriter(os.Stdout)
	tw.Quiet = quiet
	return tw
}

// flushPartial writes text output produced before a failure.
func flushPartial(rep dupscan.Reporter) {
	if tw, ok := rep.(*dupscan.TextWriter); ok {
		_ = tw.Flush()
	}
}

func displayName(path string) string {
	if path == linesrc.StdinPath {
		return "<stdin>"
	}
	return path
}
