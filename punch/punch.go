// Package punch operates the interactive time-clock screen and sequences
// clock submissions against the attendance backend.
package punch

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/noritama/dakoku/attendance"
	"github.com/noritama/dakoku/internal/config"
	"github.com/noritama/dakoku/internal/models"
	"github.com/noritama/dakoku/internal/timeutil"
)

// Service is the backend surface the punch screen depends on.
type Service interface {
	FetchDaily(ctx context.Context, date string) (*models.DailyRecord, error)
	SubmitEntry(
		ctx context.Context,
		kind models.Kind,
		happenedAt, source string,
	) error
}

// state tracks where a single clock action is in its lifecycle. Only one
// action can be past stateIdle at a time.
type state int

const (
	stateIdle state = iota
	stateConfirming
	stateSubmitting
)

type keymap struct {
	clockIn    key.Binding
	clockOut   key.Binding
	breakStart key.Binding
	breakEnd   key.Binding
	refresh    key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	clockIn: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "clock in"),
	),
	clockOut: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "clock out"),
	),
	breakStart: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "start break"),
	),
	breakEnd: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "end break"),
	),
	refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Punch is the bubbletea model for the time-clock screen.
type Punch struct {
	svc     Service
	Opts    *config.Config
	daily   *models.DailyRecord
	err     error
	state   state
	pending models.Kind
	clock   time.Time
	spinner spinner.Model
	help    help.Model
	keymap  keymap
	width   int
}

// New initialises the time-clock screen for the given backend service.
func New(svc Service, cfg *config.Config) *Punch {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &Punch{
		svc:     svc,
		Opts:    cfg,
		clock:   time.Now(),
		spinner: s,
		help:    help.New(),
		keymap:  defaultKeymap,
	}
}

// Daily returns the currently held record, which may be nil before the
// first successful fetch.
func (p *Punch) Daily() *models.DailyRecord {
	return p.daily
}

// Err returns the most recently surfaced error.
func (p *Punch) Err() error {
	return p.err
}

// Do submits a clock event and then re-fetches the daily record so the
// displayed status is the server's, not a local guess. The action is
// validated against the current record before any network call. On any
// failure the caller's previous record remains valid; a fresh record is
// returned only when both steps succeed.
func Do(
	ctx context.Context,
	svc Service,
	rec *models.DailyRecord,
	kind models.Kind,
	at time.Time,
	source string,
) (*models.DailyRecord, error) {
	var status models.Status
	if rec != nil {
		status = rec.Status
	}

	if !attendance.Can(status, kind) {
		return nil, &ValidationError{Kind: kind, Status: status}
	}

	err := svc.SubmitEntry(ctx, kind, timeutil.Timestamp(at), source)
	if err != nil {
		return nil, err
	}

	return svc.FetchDaily(ctx, timeutil.DateString(at))
}
