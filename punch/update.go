package punch

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/noritama/dakoku/attendance"
	"github.com/noritama/dakoku/internal/models"
	"github.com/noritama/dakoku/internal/timeutil"
)

var debug = os.Getenv("DAKOKU_DEBUG") != ""

type tickMsg time.Time

// dailyMsg carries the result of a refresh fetch.
type dailyMsg struct {
	daily *models.DailyRecord
	err   error
}

// punchedMsg carries the result of a submit-then-refetch cycle.
type punchedMsg struct {
	daily *models.DailyRecord
	err   error
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *Punch) Init() tea.Cmd {
	return tea.Batch(tick(), p.fetchCmd())
}

// fetchCmd re-fetches today's record. The record is replaced wholesale on
// success and retained on failure.
func (p *Punch) fetchCmd() tea.Cmd {
	svc := p.svc

	return func() tea.Msg {
		rec, err := svc.FetchDaily(context.Background(), timeutil.NowDateString())

		return dailyMsg{daily: rec, err: err}
	}
}

// submitCmd runs the full submit-then-refetch sequence for the given kind.
// Post-punch side effects (notification, punch_cmd) only fire when both
// steps succeed.
func (p *Punch) submitCmd(kind models.Kind) tea.Cmd {
	svc := p.svc
	opts := p.Opts
	rec := p.daily

	return func() tea.Msg {
		fresh, err := Do(
			context.Background(),
			svc,
			rec,
			kind,
			time.Now(),
			opts.API.Source,
		)
		if err != nil {
			return punchedMsg{err: err}
		}

		AfterPunch(opts, kind)

		return punchedMsg{daily: fresh}
	}
}

// request begins the lifecycle for a clock action. Clock-out is destructive
// for the day, so it must pass through an explicit confirmation first; every
// other kind goes straight to submission.
func (p *Punch) request(kind models.Kind) (tea.Model, tea.Cmd) {
	if p.state != stateIdle {
		return p, nil
	}

	var status models.Status
	if p.daily != nil {
		status = p.daily.Status
	}

	if !attendance.Can(status, kind) {
		p.err = &ValidationError{Kind: kind, Status: status}

		return p, nil
	}

	if kind == models.ClockOut {
		p.state = stateConfirming
		p.pending = kind

		return p, nil
	}

	return p.startSubmit(kind)
}

func (p *Punch) startSubmit(kind models.Kind) (tea.Model, tea.Cmd) {
	p.state = stateSubmitting
	p.pending = kind
	p.err = nil

	return p, tea.Batch(p.spinner.Tick, p.submitCmd(kind))
}

func (p *Punch) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, p.keymap.quit) {
		return p, tea.Quit
	}

	switch p.state {
	case stateConfirming:
		switch msg.String() {
		case "y", "Y", "enter":
			return p.startSubmit(p.pending)
		case "n", "N", "esc":
			p.state = stateIdle
			p.pending = ""
		}

		return p, nil

	case stateSubmitting:
		// At most one action in flight; drop everything else.
		return p, nil
	}

	switch {
	case key.Matches(msg, p.keymap.clockIn):
		return p.request(models.ClockIn)
	case key.Matches(msg, p.keymap.clockOut):
		return p.request(models.ClockOut)
	case key.Matches(msg, p.keymap.breakStart):
		return p.request(models.BreakStart)
	case key.Matches(msg, p.keymap.breakEnd):
		return p.request(models.BreakEnd)
	case key.Matches(msg, p.keymap.refresh):
		p.err = nil

		return p, p.fetchCmd()
	}

	return p, nil
}

func (p *Punch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if debug {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.help.Width = msg.Width

		return p, nil

	case tickMsg:
		p.clock = time.Time(msg)

		return p, tick()

	case spinner.TickMsg:
		if p.state != stateSubmitting {
			return p, nil
		}

		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)

		return p, cmd

	case dailyMsg:
		if msg.err != nil {
			p.err = msg.err
		} else {
			p.daily = msg.daily
			p.err = nil
		}

		return p, nil

	case punchedMsg:
		p.state = stateIdle
		p.pending = ""

		if msg.err != nil {
			p.err = msg.err
		} else {
			p.daily = msg.daily
			p.err = nil
		}

		return p, nil

	case tea.KeyMsg:
		return p.handleKeyPress(msg)
	}

	return p, nil
}
