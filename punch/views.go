package punch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/noritama/dakoku/attendance"
	"github.com/noritama/dakoku/internal/models"
	"github.com/noritama/dakoku/internal/timeutil"
	"github.com/noritama/dakoku/internal/ui"
)

var (
	clockStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	askStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusOpen:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		models.StatusOnBreak:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		models.StatusNotStarted:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.StatusClosed:       lipgloss.NewStyle(),
		models.StatusInconsistent: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)

func (p *Punch) statusView() string {
	label := attendance.Label(p.daily.Status)

	style, ok := statusStyles[p.daily.Status]
	if !ok {
		style = lipgloss.NewStyle()
	}

	return style.SetString(label).String()
}

func (p *Punch) summaryView() string {
	var s strings.Builder

	twentyFour := p.Opts.Display.TwentyFourHour

	s.WriteString("status  " + p.statusView() + "\n")
	s.WriteString(
		fmt.Sprintf(
			"in      %s\nout     %s\n",
			ui.FormatStamp(p.daily.Actual.Start, twentyFour),
			ui.FormatStamp(p.daily.Actual.End, twentyFour),
		),
	)
	s.WriteString(
		fmt.Sprintf(
			"work    %s\nbreak   %s\n",
			ui.FormatMinutes(p.daily.Totals.Work),
			ui.FormatMinutes(p.daily.Totals.Break),
		),
	)

	if p.daily.Totals.Overtime > 0 {
		s.WriteString(
			"overtime " + ui.FormatMinutes(p.daily.Totals.Overtime) + "\n",
		)
	}

	return s.String()
}

// helpBindings lists only the actions the current status permits, plus the
// always-available keys.
func (p *Punch) helpBindings() []key.Binding {
	var status models.Status
	if p.daily != nil {
		status = p.daily.Status
	}

	bindings := make([]key.Binding, 0, 6)

	for _, k := range attendance.Permitted(status) {
		switch k {
		case models.ClockIn:
			bindings = append(bindings, p.keymap.clockIn)
		case models.ClockOut:
			bindings = append(bindings, p.keymap.clockOut)
		case models.BreakStart:
			bindings = append(bindings, p.keymap.breakStart)
		case models.BreakEnd:
			bindings = append(bindings, p.keymap.breakEnd)
		}
	}

	return append(bindings, p.keymap.refresh, p.keymap.quit)
}

func (p *Punch) View() string {
	var s strings.Builder

	s.WriteString(
		clockStyle.SetString(
			timeutil.Clock(p.clock, p.Opts.Display.TwentyFourHour),
		).String(),
	)
	s.WriteString(
		faintStyle.SetString("  " + timeutil.DateString(p.clock)).String(),
	)
	s.WriteString("\n\n")

	if p.daily != nil {
		s.WriteString(p.summaryView())
	} else {
		s.WriteString("loading today's record...\n")
	}

	switch p.state {
	case stateConfirming:
		s.WriteString(
			"\n" + askStyle.SetString("Clock out for the day? (y/n)").String() + "\n",
		)
	case stateSubmitting:
		s.WriteString(
			"\n" + p.spinner.View() +
				" recording " + attendance.KindLabel(p.pending) + "...\n",
		)
	}

	if p.err != nil {
		s.WriteString("\n" + errStyle.SetString(p.err.Error()).String() + "\n")
	}

	s.WriteString("\n" + p.help.ShortHelpView(p.helpBindings()))

	return s.String()
}
