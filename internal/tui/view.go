package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yislamovic/scheduler-v2/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Width(26).
			Padding(1, 1)

	dayStyle = lipgloss.NewStyle().
			Padding(0, 1)

	daySelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("62"))

	spotsStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(52)

	cardFocusedStyle = cardStyle.
				BorderForeground(lipgloss.Color("62"))

	timeStyle = lipgloss.NewStyle().
			Bold(true).
			Faint(true)

	studentStyle = lipgloss.NewStyle().
			Bold(true)

	faintStyle = lipgloss.NewStyle().
			Faint(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	pickerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	pickerSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("62"))

	badgeStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)
)

func (m Model) View() string {
	if m.fatalErr != nil {
		return errorStyle.Render(fmt.Sprintf("Failed to start: %v", m.fatalErr)) + "\n" +
			faintStyle.Render("Press q to quit.")
	}
	if m.loading {
		return faintStyle.Render("Connecting to scheduler...")
	}

	sidebar := m.renderSidebar()
	main := m.renderDay()
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Interview Scheduler"))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(" Demo Mode - Try it out!"))
	b.WriteString("\n\n")

	for i, day := range m.days {
		style := dayStyle
		if i == m.dayIdx {
			style = daySelectedStyle
		}
		b.WriteString(style.Render(day.Name))
		b.WriteString("\n")
		b.WriteString(spotsStyle.Render(formatSpots(day.Spots)))
		b.WriteString("\n")
	}

	return sidebarStyle.Render(b.String())
}

func (m Model) renderDay() string {
	day := m.currentDay()

	cards := make([]string, 0, len(day.Appointments))
	for i, id := range day.Appointments {
		appt := m.appointments[id]
		s := m.slots[id]
		if s == nil {
			continue
		}

		style := cardStyle
		if i == m.slotIdx {
			style = cardFocusedStyle
		}

		content := timeStyle.Render(appt.Time) + "  " + m.renderSlot(id, appt, s)
		cards = append(cards, style.Render(content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderSlot(id int, appt domain.Appointment, s *slot) string {
	switch s.mode {
	case modeEmpty:
		return faintStyle.Render("+ Add (enter)")

	case modeShow:
		if appt.Interview == nil {
			return faintStyle.Render("+ Add (enter)")
		}
		line := studentStyle.Render(appt.Interview.Student)
		if iv, ok := m.interviewers[appt.Interview.Interviewer]; ok {
			line += faintStyle.Render("  · " + iv.Name)
		}
		return line + faintStyle.Render("   e edit · d delete")

	case modeCreate, modeEdit:
		if m.formSlotID == id {
			return m.renderForm(s)
		}
		return faintStyle.Render("editing...")

	case modeConfirm:
		return "Are you sure you want to delete? " + faintStyle.Render("y confirm · n cancel")

	case modeDeleting:
		return faintStyle.Render("Deleting...")

	case modeErrorSave:
		return errorStyle.Render("Could not save appointment") + faintStyle.Render("  enter to close")

	case modeErrorDelete:
		return errorStyle.Render("Could not cancel appointment") + faintStyle.Render("  enter to close")
	}

	return ""
}

func (m Model) renderForm(s *slot) string {
	var b strings.Builder
	b.WriteString(m.studentInput.View())
	b.WriteString("\n  ")

	for _, iv := range m.dayInterviewers() {
		style := pickerStyle
		if iv.ID == s.interviewer {
			style = pickerSelectedStyle
		}
		b.WriteString(style.Render(iv.Name))
	}

	b.WriteString("\n  ")
	if m.studentInput.Value() != "" && s.interviewer != 0 {
		b.WriteString(faintStyle.Render("enter save · tab interviewer · esc cancel"))
	} else {
		b.WriteString(faintStyle.Render("student name and interviewer required · esc cancel"))
	}
	return b.String()
}

func (m Model) renderFooter() string {
	short := m.sessionID
	if len(short) > 8 {
		short = short[:8]
	}

	footer := badgeStyle.Render(fmt.Sprintf("Demo Session %s", short)) +
		faintStyle.Render("  changes are isolated to this session · q quit")
	if m.status != "" {
		footer += "  " + errorStyle.Render(m.status)
	}
	return footer
}

// formatSpots renders a day's remaining free slots the way the day list
// shows them.
func formatSpots(spots int) string {
	switch spots {
	case 0:
		return "no spots remaining"
	case 1:
		return "1 spot remaining"
	default:
		return fmt.Sprintf("%d spots remaining", spots)
	}
}
