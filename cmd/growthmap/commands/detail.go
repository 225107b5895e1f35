package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/growthmap/internal/report"
)

// detailCmd prints the single-stock view
var detailCmd = &cobra.Command{
	Use:   "detail [ticker]",
	Short: "개별 기업 심층 분석",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)
}

func runDetail(cmd *cobra.Command, args []string) error {
	cfg, _, builder, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	d, err := report.Lookup(builder.Build(cfg.Dataset.Seed), args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	PrintDetail(cmd.OutOrStdout(), d)
	return nil
}
