package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wonny/growthmap/internal/signal"
)

// classifyCmd evaluates the action rules for raw inputs
var classifyCmd = &cobra.Command{
	Use:   "classify [growth_score] [peg_ratio]",
	Short: "액션 추천 규칙 평가",
	Args:  cobra.ExactArgs(2),
	RunE:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	growth, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid growth_score: %w", err)
	}
	peg, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid peg_ratio: %w", err)
	}

	action, rule := signal.Explain(growth, peg)
	if rule == "" {
		rule = "default"
	}
	tpl := signal.TemplateFor(action)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (rule=%s, peg_band=%s)\n", tpl.Title, rule, signal.InterpretPEG(peg))
	fmt.Fprintln(out, tpl.Description)
	return nil
}
