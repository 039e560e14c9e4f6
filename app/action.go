package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/noritama/dakoku/attendance"
	"github.com/noritama/dakoku/client"
	"github.com/noritama/dakoku/internal/config"
	"github.com/noritama/dakoku/internal/models"
	"github.com/noritama/dakoku/internal/timeutil"
	"github.com/noritama/dakoku/internal/ui"
	"github.com/noritama/dakoku/punch"
	"github.com/noritama/dakoku/store"
)

const (
	envNoColor       = "NO_COLOR"
	envDakokuNoColor = "DAKOKU_NO_COLOR"
	envDakokuDebug   = "DAKOKU_DEBUG"
)

var errNotLoggedIn = errors.New(
	"not logged in: run 'dakoku login' first",
)

// appConfig assembles the configuration from the config file and
// command-line flags.
func appConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// sessionHelper loads the config and stored session, and returns a client
// ready to make authenticated calls.
func sessionHelper(ctx *cli.Context) (*config.Config, *client.Client, error) {
	cfg, err := appConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, nil, err
	}

	sess, err := db.Session()

	_ = db.Close()

	if err != nil {
		return nil, nil, err
	}

	if !sess.LoggedIn() {
		return nil, nil, errNotLoggedIn
	}

	api := client.New(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
	)
	api.SetToken(sess.Token)

	return cfg, api, nil
}

func printDaily(cfg *config.Config, rec *models.DailyRecord) {
	twentyFour := cfg.Display.TwentyFourHour

	data := [][]string{
		{"DATE", "STATUS", "IN", "OUT", "WORK", "BREAK", "OVERTIME"},
		{
			rec.Date,
			ui.Status(rec.Status, attendance.Label(rec.Status)),
			ui.FormatStamp(rec.Actual.Start, twentyFour),
			ui.FormatStamp(rec.Actual.End, twentyFour),
			ui.FormatMinutes(rec.Totals.Work),
			ui.FormatMinutes(rec.Totals.Break),
			ui.FormatMinutes(rec.Totals.Overtime),
		},
	}

	ui.PrintTable(data, config.Stdout)
}

// loginAction handles the login command. Credentials not supplied through
// flags are collected interactively.
func loginAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	email := ctx.String("email")
	password := ctx.String("password")

	if email == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
	}

	api := client.New(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
	)

	sess, err := api.Login(ctx.Context, email, password)
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveSession(sess); err != nil {
		return err
	}

	slog.InfoContext(ctx.Context, "logged in", slog.String("email", sess.User.Email))

	pterm.Success.Printfln("Logged in as %s", sess.User.Name)

	return nil
}

// logoutAction discards the stored session. The token is opaque to this
// client, so there is nothing to revoke server-side.
func logoutAction(_ *cli.Context) error {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteSession(); err != nil {
		return err
	}

	pterm.Success.Println("Logged out")

	return nil
}

// whoamiAction prints the profile of the authenticated user.
func whoamiAction(ctx *cli.Context) error {
	_, api, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	u, err := api.Me(ctx.Context)
	if err != nil {
		return err
	}

	pterm.Printfln("%s <%s>", ui.Highlight(u.Name), u.Email)

	if u.Role != "" {
		pterm.Printfln("role: %s", u.Role)
	}

	return nil
}

// statusAction fetches and prints the attendance summary for a day.
func statusAction(ctx *cli.Context) error {
	cfg, api, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	date := timeutil.NowDateString()

	if s := ctx.String("date"); s != "" {
		date, err = timeutil.FromStr(s)
		if err != nil {
			return fmt.Errorf("unable to parse --date: %w", err)
		}
	}

	rec, err := api.FetchDaily(ctx.Context, date)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	printDaily(cfg, rec)

	return nil
}

// clockAction records a single clock event and prints the refreshed
// summary. Clock-out asks for confirmation unless --yes is given.
func clockAction(ctx *cli.Context, kind models.Kind) error {
	cfg, api, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	rec, err := api.FetchDaily(ctx.Context, timeutil.NowDateString())
	if err != nil {
		return err
	}

	if kind == models.ClockOut && !ctx.Bool("yes") {
		var confirmed bool

		err := huh.NewConfirm().
			Title("Clock out for the day?").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}

		if !confirmed {
			pterm.Info.Println("Clock-out cancelled")

			return nil
		}
	}

	fresh, err := punch.Do(
		ctx.Context,
		api,
		rec,
		kind,
		time.Now(),
		cfg.API.Source,
	)
	if err != nil {
		return err
	}

	punch.AfterPunch(cfg, kind)

	pterm.Success.Printfln("Recorded %s", attendance.KindLabel(kind))
	printDaily(cfg, fresh)

	return nil
}

// defaultAction opens the interactive time-clock screen.
func defaultAction(ctx *cli.Context) error {
	cfg, api, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(punch.New(api, cfg))

	_, err = p.Run()

	return err
}

func initLogging() {
	w := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
	}

	level := slog.LevelInfo
	if os.Getenv(envDakokuDebug) != "" {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

func beforeAction(ctx *cli.Context) error {
	if err := config.InitializePaths(); err != nil {
		return err
	}

	initLogging()

	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if DAKOKU_NO_COLOR is set
	if _, exists := os.LookupEnv(envDakokuNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting dakoku")

	return nil
}
