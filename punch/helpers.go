package punch

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"

	"github.com/noritama/dakoku/attendance"
	"github.com/noritama/dakoku/internal/config"
	"github.com/noritama/dakoku/internal/models"
)

// AfterPunch runs the post-punch side effects: a desktop notification and
// the user's punch_cmd, if configured. Failures are reported but never
// block the punch itself.
func AfterPunch(cfg *config.Config, kind models.Kind) {
	notify(cfg, kind)

	if err := runPunchCmd(cfg.Settings.PunchCmd); err != nil {
		slog.Error("punch_cmd failed", slog.Any("error", err))
	}
}

// notify shows a desktop notification for a recorded clock event.
func notify(cfg *config.Config, kind models.Kind) {
	if !cfg.Notifications.Enabled {
		return
	}

	msg := fmt.Sprintf("Recorded %s", attendance.KindLabel(kind))

	err := beeep.Notify("Dakoku", msg, "")
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}
}

// runPunchCmd executes the configured post-punch command.
func runPunchCmd(punchCmd string) error {
	if punchCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(punchCmd)
	if err != nil {
		return fmt.Errorf("unable to parse punch_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}
