package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/growthmap/internal/contracts"
)

var (
	buildSectors []string
	buildJSON    bool
)

// buildCmd prints the dataset for the configured seed
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "데이터셋 생성 및 출력",
	Long: `Build the synthetic metrics dataset and print it.

Example:
  go run ./cmd/growthmap build
  go run ./cmd/growthmap build --seed 7 --sector "AI & Cloud"
  go run ./cmd/growthmap build --json`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringSliceVar(&buildSectors, "sector", nil, "sector filter (repeatable)")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "print JSON instead of a table")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, _, builder, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	ds := builder.Build(cfg.Dataset.Seed)
	out := cmd.OutOrStdout()

	sectors := make([]contracts.Sector, 0, len(buildSectors))
	for _, s := range buildSectors {
		sectors = append(sectors, contracts.Sector(s))
	}
	records := ds.Filter(sectors...)

	if buildJSON {
		view := *ds
		view.Records = records

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(&view)
	}

	PrintHeader(out, fmt.Sprintf("Dataset · seed=%d · %d tickers", ds.Seed, ds.Len()))
	PrintRecords(out, records)
	return nil
}
