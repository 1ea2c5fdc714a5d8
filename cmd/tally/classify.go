package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/engine"
	"github.com/tallyhq/tally/internal/feed"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/transfer"
)

func classifyCmd() *cobra.Command {
	var (
		outPath    string
		format     string
		windowDays int
	)

	cmd := &cobra.Command{
		Use:   "classify <batch-file>",
		Short: "Classify a batch of transactions",
		Long: `Classify a transaction batch exported from the aggregation feed.

The batch is read from a JSON account-set export or an OFX/QFX statement
file, run through the transfer matcher and the detector chain, and written
back as classified JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := loadBatch(args[0], format)
			if err != nil {
				return err
			}

			dbPath, err := databasePath()
			if err != nil {
				return err
			}
			store, err := storage.NewSQLiteStore(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open rule store: %w", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("failed to migrate rule store: %w", err)
			}

			config := engine.DefaultConfig()
			config.TransferWindowDays = windowDays
			eng, err := engine.NewWithConfig(store, config)
			if err != nil {
				return err
			}

			stats, err := eng.ClassifyBatch(cmd.Context(), txns)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath) //nolint:gosec // user-supplied output path
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			if err := feed.WriteJSON(out, txns); err != nil {
				return err
			}

			printStats(cmd, stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write classified batch to file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "batch format: json or ofx (default: by file extension)")
	cmd.Flags().IntVar(&windowDays, "transfer-window", transfer.DefaultWindowDays, "transfer match window in calendar days")

	return cmd
}

// loadBatch reads a transaction batch from a JSON export or OFX file.
func loadBatch(path, format string) ([]model.Transaction, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ofx", ".qfx":
			format = "ofx"
		default:
			format = "json"
		}
	}

	f, err := os.Open(path) //nolint:gosec // user-supplied batch path
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case "json":
		return feed.ParseJSON(f)
	case "ofx":
		return feed.NewOFXParser().Parse(f)
	default:
		return nil, fmt.Errorf("unknown batch format: %s", format)
	}
}

func printStats(cmd *cobra.Command, stats *engine.Stats) {
	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, cli.FormatTitle("Classification summary"))
	fmt.Fprintln(errOut, cli.FormatSuccess(fmt.Sprintf("%d transactions classified", stats.Total)))
	if stats.TransferPairs > 0 {
		fmt.Fprintln(errOut, cli.FormatSuccess(fmt.Sprintf("%d transfer pairs linked", stats.TransferPairs)))
	}

	rows := []struct {
		label string
		kind  model.ReasonKind
	}{
		{"Payee rules", model.ReasonPayeeRule},
		{"Manual", model.ReasonManual},
		{"CC payments", model.ReasonAutoCCPayment},
		{"Transfers", model.ReasonAutoTransfer},
		{"Patterns", model.ReasonPattern},
		{"Default", model.ReasonDefault},
	}
	for _, row := range rows {
		if n := stats.ByKind[row.kind]; n > 0 {
			fmt.Fprintln(errOut, cli.FormatSubtle(fmt.Sprintf("  %-12s %d", row.label, n)))
		}
	}
}
