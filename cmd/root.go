/*
Copyright © 2026 Ethan Faust (ethanfaust)
*/

// root.go defines the root command and CLI execution entry point.
//
// minigrep is a single-purpose tool, so the root command is the search
// itself. Argument handling is a two-phase parse: pflag strips recognised
// flag tokens wherever they appear, then exactly two positional tokens
// (pattern, file) must remain. A pattern or file that looks like a flag is
// passed after "--".
//
// Usage errors (wrong positional count, unknown flag) print usage and exit 1.
// Runtime failures (file open, bad pattern, undecodable input) print only a
// diagnostic: SilenceUsage is set once the arguments have been accepted.

package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ethanfaust/minigrep/internal/config"
	"github.com/ethanfaust/minigrep/internal/input"
	"github.com/ethanfaust/minigrep/internal/log"
	"github.com/ethanfaust/minigrep/internal/search"
	"github.com/spf13/cobra"
)

var (
	invertMatch bool
	dumpGroups  bool
	ignoreCase  bool
	countOnly   bool
)

var rootCmd = &cobra.Command{
	Use:   "minigrep [flags] <pattern> <file>",
	Short: "Print lines of a file matching a regular expression",
	Long: `Search a file line by line for a regular expression.

  minigrep "an" fruits.txt              # lines containing "an"
  minigrep -v "an" fruits.txt           # lines NOT containing "an"
  minigrep -g '(\w+)=(\d+)' vars.env    # print capture groups, comma-joined
  minigrep -i "error|warn" app.log      # case-insensitive alternation
  minigrep "x" -                        # read lines from stdin

Use "--" when the pattern or file starts with a dash:

  minigrep -- "-v" notes.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

func runSearch(c *cobra.Command, args []string) error {
	// Both positionals accepted; anything that fails past this point is a
	// runtime error, not a usage error.
	c.SilenceUsage = true

	pattern, filename := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := search.Options{
		InvertMatch:   invertMatch,
		DumpGroups:    dumpGroups,
		IgnoreCase:    ignoreCase,
		CountOnly:     countOnly,
		MaxLineLength: cfg.MaxLineLength(),
	}
	if maxLineLength > 0 {
		opts.MaxLineLength = maxLineLength
	}
	if strictLF {
		opts.Terminator = input.TermLF
	}

	var r io.Reader
	if filename == "-" {
		r = c.InOrStdin()
	} else {
		f, err := os.Open(filename)
		if err != nil {
			log.Event("search:run", "search").Pattern(pattern).File(filename).Write(err)
			return err
		}
		defer f.Close()
		r = f
	}

	w := out
	if JSON() {
		// Text and JSON are alternative surfaces, not additive.
		w = io.Discard
	}

	result, err := search.Run(c.Context(), w, r, pattern, opts)

	log.Event("search:run", "search").
		Pattern(pattern).
		File(filename).
		Detail("scanned", result.Scanned).
		Detail("matched", result.Matched).
		Write(err)

	if err != nil {
		if JSON() {
			_ = PrintJSON(map[string]string{"error": err.Error()})
			c.SilenceErrors = true
		}
		return err
	}

	if JSON() {
		if countOnly {
			return PrintJSON(map[string]int{"count": result.Matched})
		}
		items := result.Matches
		if items == nil {
			items = []search.Match{}
		}
		return PrintJSON(items)
	}
	return nil
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits 1 on error.
func Execute() {
	// Initialise the audit logger unless config disables it
	// (warn if it fails, but continue)
	if cfg, err := config.Load(); err != nil || cfg.LogEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}
	}
	defer log.Close()

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.Flags().BoolVarP(&invertMatch, "invert-match", "v", false, "Select non-matching lines")
	rootCmd.Flags().BoolVarP(&dumpGroups, "groups", "g", false, "Print regex capture groups instead of the line")
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Ignore case distinctions")
	rootCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Only print the number of selected lines")
}
