package cmd

import (
	"fmt"

	"sweepdesk/internal/cli"
	"sweepdesk/internal/engine"
	"sweepdesk/internal/money"

	"github.com/spf13/cobra"
)

var (
	flagPrincipal   string
	flagBaseline    float64
	flagAlternative float64
	flagMonths      int
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Project earnings on the yield balance",
	Long:  "Compare cumulative earnings between the baseline and alternative routes over the horizon. Scenario values are used unless overridden by flags.",
	RunE:  runProjection,
}

func init() {
	projectionCmd.Flags().StringVar(&flagPrincipal, "principal", "", "Override the projected principal (default: Yield balance)")
	projectionCmd.Flags().Float64Var(&flagBaseline, "baseline", -1, "Override the baseline rate (annual %)")
	projectionCmd.Flags().Float64Var(&flagAlternative, "alternative", -1, "Override the alternative rate (annual %)")
	projectionCmd.Flags().IntVar(&flagMonths, "months", 0, "Override the horizon in months")
	rootCmd.AddCommand(projectionCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}
	snap := eng.Snapshot()

	principal := snap.Balances[engine.Yield]
	if flagPrincipal != "" {
		principal = money.ParseAmount(flagPrincipal)
	}
	baseline := snap.Policy.BaselineRatePct
	if flagBaseline >= 0 {
		baseline = money.ClampPercent(flagBaseline)
	}
	alternative := snap.Policy.AlternativeRatePct
	if flagAlternative >= 0 {
		alternative = money.ClampPercent(flagAlternative)
	}
	months := snap.Policy.HorizonMonths
	if flagMonths > 0 {
		months = money.ClampInt(flagMonths, engine.MinHorizonMonths, engine.MaxHorizonMonths)
	}

	points := engine.Project(principal, baseline, alternative, months)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EARNINGS OUTLOOK  %dmo", months)))
	fmt.Println()
	fmt.Println(cli.RenderKeyValue("Principal", money.FormatUSD(principal)))
	fmt.Println(cli.RenderKeyValue("Baseline", money.FormatPercent(baseline)))
	fmt.Println(cli.RenderKeyValue("Alternative", money.FormatPercent(alternative)))
	fmt.Println()

	rows := make([][]string, 0, len(points))
	uplift := make([]float64, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Month),
			money.FormatUSD(p.Baseline),
			money.FormatUSD(p.Alternative),
			money.FormatUSD(p.Alternative - p.Baseline),
		})
		uplift = append(uplift, p.Alternative-p.Baseline)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Baseline", "Alternative", "Uplift"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Uplift %s\n", cli.RenderSparkline(uplift))
	return nil
}
