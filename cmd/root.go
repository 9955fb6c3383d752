// Package cmd implements the sweepdesk CLI commands.
package cmd

import (
	"fmt"
	"os"

	"sweepdesk/internal/cli"
	"sweepdesk/internal/config"
	"sweepdesk/internal/engine"
	"sweepdesk/internal/money"
	"sweepdesk/internal/scenario"

	"github.com/spf13/cobra"
)

var (
	flagScenario string
)

var rootCmd = &cobra.Command{
	Use:   "sweepdesk",
	Short: "Cash treasury sweep desk",
	Long:  "Simulate a corporate cash desk: watch account balances, tune the sweep policy, and move idle operating cash into yield.",
	RunE:  runDesk,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "",
		"Scenario file (YAML) seeding balances and policy")
}

// newEngine builds a desk engine from config plus the scenario flag.
// A scenario file, when given, wins over config defaults; without one
// the built-in demo scenario is used with the configured approval
// setting.
func newEngine() (*engine.Engine, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}

	path := flagScenario
	if path == "" {
		path = cfg.General.ScenarioPath
	}

	if path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return nil, cfg, fmt.Errorf("load scenario: %w", err)
		}
		return engine.New(sc.Seed()), cfg, nil
	}

	seed := scenario.Default().Seed()
	seed.ApprovalRequired = cfg.General.ApprovalRequired
	return engine.New(seed), cfg, nil
}

// runDesk prints a one-shot summary of the desk state.
func runDesk(_ *cobra.Command, _ []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	// One-shot commands read a connected desk so the recommendation
	// and execution status reflect live numbers.
	eng.Connect(engine.DemoFeed)
	snap := eng.Snapshot()

	fmt.Println()
	fmt.Println(cli.RenderTitle("SWEEP DESK"))
	fmt.Println()

	rows := [][]string{}
	for _, acct := range engine.Accounts {
		rows = append(rows, []string{string(acct), money.FormatUSD(snap.Balances[acct])})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total cash", money.FormatUSD(snap.TotalCash)},
		[]string{"Operating target", money.FormatUSD(snap.Policy.OperatingTarget)},
		[]string{"Baseline rate", money.FormatPercent(snap.Policy.BaselineRatePct)},
		[]string{"Alternative rate", money.FormatPercent(snap.Policy.AlternativeRatePct)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Account", "Balance"},
		Rows:    rows,
	}))

	fmt.Println()
	if snap.Recommendation.HasSweep() {
		fmt.Printf("  Recommendation: sweep %s into Yield\n",
			money.FormatUSD(snap.Recommendation.SweepAmount))
	} else {
		fmt.Println("  Recommendation: no sweep")
	}
	fmt.Printf("  %s\n", snap.Recommendation.Rationale)

	if !snap.Status.Executable {
		fmt.Printf("\n  Blocked: %s\n", snap.Status.Reason.Message())
	}

	fmt.Println("\n  Run `sweepdesk tui` for the interactive desk.")
	return nil
}
