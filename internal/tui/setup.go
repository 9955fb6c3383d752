package tui

import (
	"sweepdesk/internal/config"
	"sweepdesk/internal/engine"
	"sweepdesk/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues holds the answers from the first-run wizard.
type setupValues struct {
	Mode             string
	ApprovalRequired bool
	Theme            string
}

func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.Mode = string(engine.DemoFeed)
	vals.ApprovalRequired = cfg.General.ApprovalRequired
	vals.Theme = cfg.Appearance.Theme

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("◈ sweepdesk").
				Description("Welcome. A few questions to set up your treasury desk.\nSettings are saved and can be changed later on the Policy tab."),

			huh.NewSelect[string]().
				Title("Balance source").
				Description("How should the desk read account balances?").
				Options(
					huh.NewOption("Demo feed (simulated balances)", string(engine.DemoFeed)),
					huh.NewOption("Wallet link (simulated live link)", string(engine.WalletLink)),
					huh.NewOption("Stay disconnected for now", string(engine.NotConnected)),
				).
				Value(&vals.Mode),

			huh.NewConfirm().
				Title("Require sweep approval?").
				Description("When on, each sweep needs an explicit approval before it can run.").
				Affirmative("Yes, require approval").
				Negative("No, execute directly").
				Value(&vals.ApprovalRequired),

			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	)
}

// updateSetupForm drives the huh form and applies its answers on completion.
func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.cfg.General.ApprovalRequired = a.setupVals.ApprovalRequired
		a.cfg.Appearance.Theme = a.setupVals.Theme
		theme.SetActive(a.setupVals.Theme)
		_ = config.Save(a.cfg)

		a.eng.SetApprovalRequired(a.setupVals.ApprovalRequired)
		if mode := engine.ConnectionMode(a.setupVals.Mode); mode.Connected() {
			a.eng.Connect(mode)
		}
		a.refresh()

		a.needSetup = false
		a.setupForm = nil
		return a, a.setFlash("Desk configured")
	}
	if a.setupForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}
