// Package app wires up the dakoku command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/noritama/dakoku/internal/config"
	"github.com/noritama/dakoku/internal/models"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the dakoku app instance.
func Get() *cli.App {
	dakokuApp := &cli.App{
		Name: "dakoku",
		Usage: `
		Dakoku is a command-line client for an employee time-clock service.
		It shows today's attendance summary and records clock-in, clock-out,
		and break events against the service.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Authenticate against the time-clock service",
				Action: loginAction,
				Flags:  []cli.Flag{emailFlag, passwordFlag},
			},
			{
				Name:   "logout",
				Usage:  "Discard the stored login session",
				Action: logoutAction,
			},
			{
				Name:   "whoami",
				Usage:  "Print the authenticated user's profile",
				Action: whoamiAction,
			},
			{
				Name:   "status",
				Usage:  "Print the attendance summary for a day (today by default)",
				Action: statusAction,
				Flags:  []cli.Flag{dateFlag, jsonFlag},
			},
			{
				Name:  "in",
				Usage: "Clock in for the day",
				Action: func(ctx *cli.Context) error {
					return clockAction(ctx, models.ClockIn)
				},
			},
			{
				Name:  "out",
				Usage: "Clock out for the day (asks for confirmation)",
				Action: func(ctx *cli.Context) error {
					return clockAction(ctx, models.ClockOut)
				},
				Flags: []cli.Flag{yesFlag},
			},
			{
				Name:  "break",
				Usage: "Start a break",
				Action: func(ctx *cli.Context) error {
					return clockAction(ctx, models.BreakStart)
				},
			},
			{
				Name:  "resume",
				Usage: "End the current break",
				Action: func(ctx *cli.Context) error {
					return clockAction(ctx, models.BreakEnd)
				},
			},
		},
		Flags: []cli.Flag{
			apiURLFlag,
			sourceFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return dakokuApp
}
