// Package tui implements the terminal client: a day sidebar, one card per
// appointment slot, and a per-card interaction state machine driving the
// book/cancel API calls.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yislamovic/scheduler-v2/internal/client"
	"github.com/yislamovic/scheduler-v2/internal/domain"
)

// Messages

type sessionReadyMsg struct {
	token string
	err   error
}

type snapshotMsg struct {
	snap *client.Snapshot
	err  error
}

// daysMsg carries the re-fetched day list after a successful mutation.
type daysMsg struct {
	days []domain.Day
	err  error
}

type bookResultMsg struct {
	id        int
	interview domain.Interview
	err       error
}

type cancelResultMsg struct {
	id  int
	err error
}

// Model is the root Bubble Tea model.
type Model struct {
	api *client.Client

	// Terminal dimensions
	width  int
	height int

	// Startup state
	loading  bool
	fatalErr error

	// Session-held data
	sessionID    string
	days         []domain.Day
	appointments map[int]domain.Appointment
	interviewers map[int]domain.Interviewer

	// Navigation
	dayIdx  int
	slotIdx int
	slots   map[int]*slot

	// Form state; formSlotID names the appointment owning the open form
	// (0 = none).
	studentInput textinput.Model
	formSlotID   int

	// Transient status line (refresh failures and the like)
	status string
}

func NewModel(api *client.Client) Model {
	input := textinput.New()
	input.Placeholder = "Enter student name"
	input.CharLimit = 60

	return Model{
		api:          api,
		loading:      true,
		slots:        make(map[int]*slot),
		studentInput: input,
	}
}

func (m Model) Init() tea.Cmd {
	return m.initSessionCmd()
}

// Commands

func (m Model) initSessionCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		token, err := api.InitSession(context.Background())
		return sessionReadyMsg{token: token, err: err}
	}
}

func (m Model) bootstrapCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		snap, err := api.Bootstrap(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m Model) refreshDaysCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		days, err := api.Days(context.Background())
		return daysMsg{days: days, err: err}
	}
}

func (m Model) bookCmd(id int, interview domain.Interview) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		err := api.Book(context.Background(), id, interview)
		return bookResultMsg{id: id, interview: interview, err: err}
	}
}

func (m Model) cancelCmd(id int) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		err := api.Cancel(context.Background(), id)
		return cancelResultMsg{id: id, err: err}
	}
}

// Update

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionReadyMsg:
		if msg.err != nil {
			m.fatalErr = msg.err
			m.loading = false
			return m, nil
		}
		m.sessionID = msg.token
		return m, m.bootstrapCmd()

	case snapshotMsg:
		m.loading = false
		if msg.err != nil {
			m.fatalErr = msg.err
			return m, nil
		}
		m.days = msg.snap.Days
		m.appointments = msg.snap.Appointments
		m.interviewers = msg.snap.Interviewers
		for id, appt := range m.appointments {
			m.slots[id] = newSlot(appt.Booked())
		}
		return m, nil

	case daysMsg:
		if msg.err != nil {
			m.status = "Could not refresh spot counts"
			return m, nil
		}
		m.days = msg.days
		m.status = ""
		return m, nil

	case bookResultMsg:
		s := m.slots[msg.id]
		if s == nil {
			return m, nil
		}
		if msg.err != nil {
			s.apply(actionSaveFail)
			return m, nil
		}
		iv := msg.interview
		appt := m.appointments[msg.id]
		appt.Interview = &iv
		m.appointments[msg.id] = appt
		s.apply(actionSaveOK)
		m.closeForm()
		return m, m.refreshDaysCmd()

	case cancelResultMsg:
		s := m.slots[msg.id]
		if s == nil {
			return m, nil
		}
		if msg.err != nil {
			s.apply(actionDeleteFail)
			return m, nil
		}
		appt := m.appointments[msg.id]
		appt.Interview = nil
		m.appointments[msg.id] = appt
		s.apply(actionDeleteOK)
		return m, m.refreshDaysCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.loading || m.fatalErr != nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	if s := m.formSlot(); s != nil && s.editing() {
		return m.handleFormKey(msg, s)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "left", "h":
		if m.dayIdx > 0 {
			m.dayIdx--
			m.slotIdx = 0
		}
		return m, nil

	case "right", "l":
		if m.dayIdx < len(m.days)-1 {
			m.dayIdx++
			m.slotIdx = 0
		}
		return m, nil

	case "up", "k":
		if m.slotIdx > 0 {
			m.slotIdx--
		}
		return m, nil

	case "down", "j":
		if m.slotIdx < len(m.currentDay().Appointments)-1 {
			m.slotIdx++
		}
		return m, nil
	}

	return m.handleSlotKey(msg)
}

// handleSlotKey routes keys to the focused card's state machine.
func (m Model) handleSlotKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.focusedAppointmentID()
	s := m.slots[id]
	if s == nil || s.busy() {
		return m, nil
	}

	key := msg.String()

	switch s.mode {
	case modeEmpty:
		if key == "enter" || key == "a" {
			s.apply(actionAdd)
			m.openForm(id, s)
		}

	case modeShow:
		switch key {
		case "e":
			appt := m.appointments[id]
			if appt.Interview != nil {
				s.student = appt.Interview.Student
				s.interviewer = appt.Interview.Interviewer
			}
			s.apply(actionEdit)
			m.openForm(id, s)
		case "d", "x":
			s.apply(actionDelete)
		}

	case modeConfirm:
		switch key {
		case "enter", "y":
			s.apply(actionConfirm)
			return m, m.cancelCmd(id)
		case "esc", "n":
			s.apply(actionCancel)
		}

	case modeErrorSave:
		if key == "enter" || key == "esc" {
			s.apply(actionCloseError)
			m.openForm(id, s)
		}

	case modeErrorDelete:
		if key == "enter" || key == "esc" {
			s.apply(actionCloseError)
		}
	}

	return m, nil
}

// handleFormKey drives the open create/edit form.
func (m Model) handleFormKey(msg tea.KeyMsg, s *slot) (tea.Model, tea.Cmd) {
	id := m.formSlotID

	switch msg.String() {
	case "esc":
		s.apply(actionCancel)
		m.closeForm()
		return m, nil

	case "tab", "shift+tab", "down", "up":
		dir := 1
		if msg.String() == "shift+tab" || msg.String() == "up" {
			dir = -1
		}
		m.cycleInterviewer(s, dir)
		return m, nil

	case "enter":
		s.student = m.studentInput.Value()
		if !s.canSave() {
			// Save is inert until both fields are present.
			return m, nil
		}
		return m, m.bookCmd(id, domain.Interview{Student: s.student, Interviewer: s.interviewer})
	}

	var cmd tea.Cmd
	m.studentInput, cmd = m.studentInput.Update(msg)
	s.student = m.studentInput.Value()
	return m, cmd
}

// Helpers

func (m *Model) openForm(id int, s *slot) {
	m.formSlotID = id
	m.studentInput.SetValue(s.student)
	m.studentInput.CursorEnd()
	m.studentInput.Focus()
}

func (m *Model) closeForm() {
	m.formSlotID = 0
	m.studentInput.Blur()
	m.studentInput.SetValue("")
}

func (m Model) formSlot() *slot {
	if m.formSlotID == 0 {
		return nil
	}
	return m.slots[m.formSlotID]
}

func (m Model) currentDay() domain.Day {
	if len(m.days) == 0 {
		return domain.Day{}
	}
	return m.days[m.dayIdx]
}

func (m Model) focusedAppointmentID() int {
	day := m.currentDay()
	if m.slotIdx >= len(day.Appointments) {
		return 0
	}
	return day.Appointments[m.slotIdx]
}

// dayInterviewers returns the interviewers available on the selected day,
// in the day's declared order.
func (m Model) dayInterviewers() []domain.Interviewer {
	day := m.currentDay()
	out := make([]domain.Interviewer, 0, len(day.Interviewers))
	for _, id := range day.Interviewers {
		if iv, ok := m.interviewers[id]; ok {
			out = append(out, iv)
		}
	}
	return out
}

// cycleInterviewer moves the form's interviewer selection through the day's
// available interviewers, wrapping at both ends.
func (m Model) cycleInterviewer(s *slot, dir int) {
	ivs := m.dayInterviewers()
	if len(ivs) == 0 {
		return
	}

	idx := -1
	for i, iv := range ivs {
		if iv.ID == s.interviewer {
			idx = i
			break
		}
	}

	if idx == -1 {
		if dir > 0 {
			s.interviewer = ivs[0].ID
		} else {
			s.interviewer = ivs[len(ivs)-1].ID
		}
		return
	}

	idx = (idx + dir + len(ivs)) % len(ivs)
	s.interviewer = ivs[idx].ID
}
