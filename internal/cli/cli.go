package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amc-tools/amc-answers/internal/fetch"
	"github.com/amc-tools/amc-answers/internal/latex"
	"github.com/amc-tools/amc-answers/internal/logger"
	"github.com/amc-tools/amc-answers/internal/wiki"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagYear      int
	flagTest      string
	flagQuestion  int
	flagSection   int
	flagTimeout   time.Duration
	flagUserAgent string
	flagRetries   uint64
	flagVerbose   bool
	flagNoColor   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amc-answers",
		Short: "Look up AMC/AIME/AJHSME/AHSME answer keys and solutions",
		Long: `A CLI tool that fetches historical math-competition answer keys and
community solutions from the Art of Problem Solving wiki.

Run without flags for an interactive session, or pass --year and --test
(plus optionally --question and --section) for a single scripted lookup.`,
		RunE: run,
	}

	// Define flags
	cmd.Flags().IntVar(&flagYear, "year", 0, "Test year for one-shot mode (e.g., 2002)")
	cmd.Flags().StringVar(&flagTest, "test", "", "Test type for one-shot mode (e.g., 10A, AIME_I, AHSME)")
	cmd.Flags().IntVar(&flagQuestion, "question", 0, "Question number to fetch solutions for (one-shot mode)")
	cmd.Flags().IntVar(&flagSection, "section", 0, "Solution section number to print (one-shot mode)")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", fetch.DefaultTimeout, "HTTP request timeout")
	cmd.Flags().StringVar(&flagUserAgent, "user-agent", string(fetch.StrategyRotate), "User-Agent strategy: rotate or fixed")
	cmd.Flags().Uint64Var(&flagRetries, "retries", 0, "Retries for transient fetch failures (0 disables)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and a metrics summary")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	return cmd
}

// run is the main command logic
func run(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		color.NoColor = true
	}
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, cmd.ErrOrStderr()))
	}

	strategy := fetch.Strategy(strings.ToLower(flagUserAgent))
	if strategy != fetch.StrategyRotate && strategy != fetch.StrategyFixed {
		return fmt.Errorf("invalid user-agent strategy: %s (must be 'rotate' or 'fixed')", flagUserAgent)
	}

	a := &app{
		out:    cmd.OutOrStdout(),
		prompt: newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		client: fetch.New(fetch.Options{
			Timeout:    flagTimeout,
			UserAgent:  strategy,
			MaxRetries: flagRetries,
		}),
		extract: wiki.NewExtractor(latex.NewConverter()),
	}

	var err error
	if flagYear != 0 || flagTest != "" {
		err = a.runOnce(flagYear, flagTest, flagQuestion, flagSection)
	} else {
		err = a.runInteractive()
	}

	if flagVerbose {
		writeMetrics(cmd.ErrOrStderr())
	}

	// stdin closing under an interactive session is a normal way to quit
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeMetrics dumps the collected fetch metrics for --verbose runs.
func writeMetrics(w io.Writer) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.Encode(logger.GetMetricsSnapshot()) //nolint:errcheck
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
