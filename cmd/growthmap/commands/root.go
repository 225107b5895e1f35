package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/growthmap/internal/metrics"
	"github.com/wonny/growthmap/internal/universe"
	"github.com/wonny/growthmap/pkg/config"
	"github.com/wonny/growthmap/pkg/logger"
)

var (
	// Global flags
	seedFlag     int64
	universeFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "growthmap",
	Short: "NASDAQ Growth & Liquidity Tracker",
	Long: `NASDAQ Growth & Liquidity Tracker

"가격은 유동성이 결정하고, 바닥은 성장이 지지한다."

Synthetic growth/valuation metrics for a fixed ticker universe,
served as a JSON/HTML dashboard API.

Examples:
  go run ./cmd/growthmap api
  go run ./cmd/growthmap build --seed 7
  go run ./cmd/growthmap detail NVDA
  go run ./cmd/growthmap classify 21 1.2`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "dataset seed (default: DATASET_SEED)")
	rootCmd.PersistentFlags().StringVar(&universeFlag, "universe", "", "universe YAML file (default: UNIVERSE_FILE or built-in)")
}

// bootstrap loads config, applies global flag overrides and creates the builder
func bootstrap(cmd *cobra.Command) (*config.Config, *logger.Logger, *metrics.Builder, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("seed") {
		cfg.Dataset.Seed = seedFlag
	}
	if universeFlag != "" {
		cfg.Dataset.UniverseFile = universeFlag
	}

	log := logger.NewWithOutput(cfg, cmd.ErrOrStderr())

	u := universe.Default()
	if cfg.Dataset.UniverseFile != "" {
		u, err = universe.Load(cfg.Dataset.UniverseFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load universe: %w", err)
		}
	}

	builder, err := metrics.NewBuilder(u, log)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, builder, nil
}
