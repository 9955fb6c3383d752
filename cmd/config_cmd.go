package cmd

import (
	"fmt"

	"sweepdesk/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.ScenarioPath != "" {
		fmt.Printf("    Scenario file:     %s\n", cfg.General.ScenarioPath)
	} else {
		fmt.Println("    Scenario file:     built-in demo desk")
	}
	fmt.Printf("    Approval required: %v\n", cfg.General.ApprovalRequired)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Directory: %s\n", config.ExportDir(cfg))
	fmt.Println()

	fmt.Println("  Launch `sweepdesk tui` to reconfigure interactively.")
	return nil
}
