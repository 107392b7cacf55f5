package cli

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// windowForm asks for the report window, preselecting the current value.
func windowForm(days *int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Calculate uptime for past:").
				Options(
					huh.NewOption("1 Day", 1),
					huh.NewOption("7 Days (Week)", 7),
				).
				Value(days),
		),
	).WithShowHelp(false)
}

func interfaceForm(iface *string, fallback string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Network interface").
				Description("Leave blank for " + fallback).
				Placeholder(fallback).
				Value(iface),
		),
	).WithShowHelp(false)
}

// resolveWindow returns the flag value when set, otherwise asks on a
// terminal, otherwise falls back to the configured default.
func resolveWindow(app *App, flagDays int, changed bool) (int, error) {
	if changed {
		return flagDays, nil
	}
	days := app.Config.Report.WindowDays
	if !app.IsInteractive() {
		return days, nil
	}
	if err := windowForm(&days).Run(); err != nil {
		return 0, err
	}
	return days, nil
}

func resolveInterface(app *App, flagIface string) (string, error) {
	if flagIface != "" {
		return flagIface, nil
	}
	fallback := app.Config.Network.Interface
	if !app.IsInteractive() {
		return fallback, nil
	}

	var iface string
	if err := interfaceForm(&iface, fallback).Run(); err != nil {
		return "", err
	}
	if iface = strings.TrimSpace(iface); iface == "" {
		return fallback, nil
	}
	return iface, nil
}
