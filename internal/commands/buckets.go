package commands

import (
	"github.com/spf13/cobra"

	"github.com/cashlens-dev/cashlens/internal/importer"
	"github.com/cashlens-dev/cashlens/internal/report"
	"github.com/cashlens-dev/cashlens/internal/underwriting"
)

func newBucketsCommand() *cobra.Command {
	var (
		cfgPath string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "buckets <transactions.csv>",
		Short: "Show the risk-bucket breakdown for a categorized-transaction export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			txns, err := importer.ImportFile(importer.DefaultRegistry(), args[0], format)
			if err != nil {
				return err
			}

			rows := underwriting.BucketSummary(underwriting.Partition(txns))
			report.RenderBuckets(cmd.OutOrStdout(), rows, report.Options{
				BarWidth: cfg.Report.BarWidth,
				ShowBars: cfg.Report.ShowBars,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to cashlens.yaml")
	cmd.Flags().StringVar(&format, "format", "categorized", "import format")

	return cmd
}
