package app

import "github.com/urfave/cli/v2"

var (
	apiURLFlag = &cli.StringFlag{
		Name:  "api-url",
		Usage: "Override the configured time-clock service URL",
	}

	sourceFlag = &cli.StringFlag{
		Name:  "source",
		Usage: "Override the channel literal attached to clock events",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a successful punch",
	}

	emailFlag = &cli.StringFlag{
		Name:    "email",
		Aliases: []string{"e"},
		Usage:   "Account email (prompted for when omitted)",
	}

	passwordFlag = &cli.StringFlag{
		Name:  "password",
		Usage: "Account password (prompted for when omitted)",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"D"},
		Usage:   "Day to summarise (e.g. '2025-09-03' or 'yesterday')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the daily record as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the clock-out confirmation prompt",
	}
)
