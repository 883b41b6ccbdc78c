package commands

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cashlens-dev/cashlens/internal/importer"
	"github.com/cashlens-dev/cashlens/internal/report"
	"github.com/cashlens-dev/cashlens/internal/underwriting"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		cfgPath string
		format  string
		byMonth bool
		amount  string
		rate    float64
		term    int
	)

	cmd := &cobra.Command{
		Use:   "analyze <transactions.csv>",
		Short: "Compute underwriting metrics from a categorized-transaction export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			scenario, err := cfg.LoanScenario()
			if err != nil {
				return err
			}
			if amount != "" {
				principal, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("parsing --amount %q: %w", amount, err)
				}
				if term <= 0 || !cmd.Flags().Changed("rate") {
					return fmt.Errorf("--amount requires --rate and --term")
				}
				scenario = &underwriting.LoanScenario{
					Amount:     principal,
					AnnualRate: rate,
					TermMonths: term,
				}
			}

			txns, err := importer.ImportFile(importer.DefaultRegistry(), args[0], format)
			if err != nil {
				return err
			}

			opts := report.Options{
				BarWidth: cfg.Report.BarWidth,
				ShowBars: cfg.Report.ShowBars,
			}
			out := cmd.OutOrStdout()

			if byMonth {
				results, err := underwriting.CalculateByMonth(txns)
				if err != nil {
					return err
				}
				months := make([]string, 0, len(results))
				for ym := range results {
					months = append(months, ym)
				}
				sort.Strings(months)
				for _, ym := range months {
					fmt.Fprintf(out, "==== %s ====\n", ym)
					report.Render(out, results[ym], opts)
					fmt.Fprintln(out)
				}
				return nil
			}

			metrics, err := underwriting.Calculate(txns, underwriting.Options{Scenario: scenario})
			if err != nil {
				return err
			}
			report.Render(out, metrics, opts)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to cashlens.yaml")
	cmd.Flags().StringVar(&format, "format", "categorized", "import format")
	cmd.Flags().BoolVar(&byMonth, "by-month", false, "compute metrics per calendar month")
	cmd.Flags().StringVar(&amount, "amount", "", "proposed loan amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "proposed loan annual rate, e.g. 0.12")
	cmd.Flags().IntVar(&term, "term", 0, "proposed loan term in months")

	return cmd
}
