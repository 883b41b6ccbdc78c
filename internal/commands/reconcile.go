package commands

import (
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashlens-dev/cashlens/internal/importer"
	"github.com/cashlens-dev/cashlens/internal/model"
	"github.com/cashlens-dev/cashlens/internal/underwriting"
)

func newReconcileCommand() *cobra.Command {
	var (
		format  string
		opening string
		closing string
	)

	cmd := &cobra.Command{
		Use:   "reconcile <transactions.csv>",
		Short: "Check opening + net change against the closing balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			open, err := decimal.NewFromString(opening)
			if err != nil {
				return fmt.Errorf("parsing --opening %q: %w", opening, err)
			}
			closed, err := decimal.NewFromString(closing)
			if err != nil {
				return fmt.Errorf("parsing --closing %q: %w", closing, err)
			}

			txns, err := importer.ImportFile(importer.DefaultRegistry(), args[0], format)
			if err != nil {
				return err
			}

			meta := &model.StatementMetadata{
				DocumentID:     filepath.Base(args[0]),
				OpeningBalance: open,
				ClosingBalance: closed,
			}
			if !underwriting.Reconcile(meta, txns) {
				return fmt.Errorf("statement does not reconcile")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "balanced")
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "categorized", "import format")
	cmd.Flags().StringVar(&opening, "opening", "", "statement opening balance (required)")
	cmd.Flags().StringVar(&closing, "closing", "", "statement closing balance (required)")
	_ = cmd.MarkFlagRequired("opening")
	_ = cmd.MarkFlagRequired("closing")

	return cmd
}
