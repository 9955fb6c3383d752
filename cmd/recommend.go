package cmd

import (
	"fmt"

	"sweepdesk/internal/cli"
	"sweepdesk/internal/engine"
	"sweepdesk/internal/money"

	"github.com/spf13/cobra"
)

var (
	flagOperating string
	flagTarget    string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show the current sweep recommendation",
	Long:  "Derive the sweep recommendation from the scenario, optionally overriding the operating balance and target.",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&flagOperating, "operating", "", "Override the Operating balance (e.g. 85,000)")
	recommendCmd.Flags().StringVar(&flagTarget, "target", "", "Override the operating target")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	eng.Connect(engine.DemoFeed)
	if flagOperating != "" {
		eng.SetBalance(engine.Operating, flagOperating)
	}
	if flagTarget != "" {
		eng.SetTarget(flagTarget)
	}
	snap := eng.Snapshot()

	fmt.Println()
	fmt.Println(cli.RenderTitle("SWEEP RECOMMENDATION"))
	fmt.Println()
	fmt.Println(cli.RenderKeyValue("Operating", money.FormatUSD(snap.Balances[engine.Operating])))
	fmt.Println(cli.RenderKeyValue("Target", money.FormatUSD(snap.Policy.OperatingTarget)))
	if snap.Recommendation.HasSweep() {
		fmt.Println(cli.RenderKeyValue("Sweep", money.FormatUSD(snap.Recommendation.SweepAmount)))
	} else {
		fmt.Println(cli.RenderKeyValue("Sweep", "none"))
	}
	fmt.Println()
	fmt.Printf("  %s\n", snap.Recommendation.Rationale)
	return nil
}
