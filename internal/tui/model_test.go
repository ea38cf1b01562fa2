package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yislamovic/scheduler-v2/internal/client"
	"github.com/yislamovic/scheduler-v2/internal/domain"
	"github.com/yislamovic/scheduler-v2/internal/seed"
)

func readyModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(client.New("http://localhost:0"))

	s := seed.Schedule()
	snap := &client.Snapshot{
		Days:         s.Days,
		Appointments: s.Appointments,
		Interviewers: s.Interviewers,
	}

	updated, _ := m.Update(snapshotMsg{snap: snap})
	return updated.(Model)
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// focusSlot moves the focus to the given position on the current day.
func focusSlot(t *testing.T, m Model, idx int) Model {
	t.Helper()
	for i := 0; i < idx; i++ {
		m, _ = press(t, m, "down")
	}
	return m
}

func TestSnapshot_BuildsSlots(t *testing.T) {
	m := readyModel(t)

	require.Len(t, m.slots, 25)
	assert.Equal(t, modeShow, m.slots[1].mode, "pre-booked slot starts in show")
	assert.Equal(t, modeEmpty, m.slots[4].mode, "free slot starts empty")
}

func TestAdd_OpensCreateForm(t *testing.T) {
	m := readyModel(t)
	m = focusSlot(t, m, 3) // Monday appointment 4, the free one

	m, _ = press(t, m, "enter")
	assert.Equal(t, modeCreate, m.slots[4].mode)
	assert.Equal(t, 4, m.formSlotID)
}

func TestSave_InertWithoutStudent(t *testing.T) {
	m := readyModel(t)
	m = focusSlot(t, m, 3)
	m, _ = press(t, m, "enter") // open form

	// Select an interviewer but type no name.
	m, _ = press(t, m, "tab")
	require.NotZero(t, m.slots[4].interviewer)

	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd, "save with empty student must issue no request")
	assert.Equal(t, modeCreate, m.slots[4].mode, "no transition on invalid save")
}

func TestSave_InertWithoutInterviewer(t *testing.T) {
	m := readyModel(t)
	m = focusSlot(t, m, 3)
	m, _ = press(t, m, "enter")

	m, _ = press(t, m, "A")
	m, _ = press(t, m, "d")
	m, _ = press(t, m, "a")
	require.Equal(t, "Ada", m.studentInput.Value())

	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, modeCreate, m.slots[4].mode)
}

func TestSave_ValidFormIssuesRequest(t *testing.T) {
	m := readyModel(t)
	m = focusSlot(t, m, 3)
	m, _ = press(t, m, "enter")

	m, _ = press(t, m, "Z")
	m, _ = press(t, m, "o")
	m, _ = press(t, m, "e")
	m, _ = press(t, m, "tab")

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd, "valid save issues the booking request")
	assert.Equal(t, modeCreate, m.slots[4].mode, "transition waits for the result message")
}

func TestBookResult_SuccessMergesAndShows(t *testing.T) {
	m := readyModel(t)
	m = focusSlot(t, m, 3)
	m, _ = press(t, m, "enter")

	iv := domain.Interview{Student: "Zoe", Interviewer: 1}
	updated, cmd := m.Update(bookResultMsg{id: 4, interview: iv})
	m = updated.(Model)

	assert.Equal(t, modeShow, m.slots[4].mode)
	require.NotNil(t, m.appointments[4].Interview)
	assert.Equal(t, "Zoe", m.appointments[4].Interview.Student)
	assert.NotNil(t, cmd, "success triggers the days refetch")
	assert.Zero(t, m.formSlotID, "form closes on success")
}

func TestBookResult_FailureShowsError(t *testing.T) {
	m := readyModel(t)
	m = focusSlot(t, m, 3)
	m, _ = press(t, m, "enter")

	updated, cmd := m.Update(bookResultMsg{id: 4, err: errors.New("boom")})
	m = updated.(Model)

	assert.Equal(t, modeErrorSave, m.slots[4].mode)
	assert.Nil(t, cmd, "no refetch on failure")
	assert.Nil(t, m.appointments[4].Interview, "no optimistic merge on failure")
}

func TestErrorSave_CloseReturnsToFormWithDraft(t *testing.T) {
	m := readyModel(t)
	m = focusSlot(t, m, 3)
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "Z")
	m, _ = press(t, m, "o")
	m, _ = press(t, m, "e")
	m, _ = press(t, m, "tab")

	updated, _ := m.Update(bookResultMsg{id: 4, err: errors.New("boom")})
	m = updated.(Model)
	require.Equal(t, modeErrorSave, m.slots[4].mode)

	m, _ = press(t, m, "enter")
	assert.Equal(t, modeCreate, m.slots[4].mode)
	assert.Equal(t, "Zoe", m.studentInput.Value(), "draft survives the error round trip")
}

func TestDeleteFlow(t *testing.T) {
	m := readyModel(t)
	// Monday appointment 1 is pre-booked, focus starts on it.

	m, _ = press(t, m, "d")
	assert.Equal(t, modeConfirm, m.slots[1].mode)

	m, cmd := press(t, m, "y")
	assert.Equal(t, modeDeleting, m.slots[1].mode)
	require.NotNil(t, cmd, "confirm issues the cancel request")

	updated, refetch := m.Update(cancelResultMsg{id: 1})
	m = updated.(Model)
	assert.Equal(t, modeEmpty, m.slots[1].mode)
	assert.Nil(t, m.appointments[1].Interview)
	assert.NotNil(t, refetch)
}

func TestDeleteFailure_ThenClose(t *testing.T) {
	m := readyModel(t)
	m, _ = press(t, m, "d")
	m, _ = press(t, m, "y")

	updated, _ := m.Update(cancelResultMsg{id: 1, err: errors.New("boom")})
	m = updated.(Model)
	assert.Equal(t, modeErrorDelete, m.slots[1].mode)
	require.NotNil(t, m.appointments[1].Interview, "failed cancel leaves the booking in place")

	m, _ = press(t, m, "enter")
	assert.Equal(t, modeShow, m.slots[1].mode)
}

func TestDeleting_IgnoresInput(t *testing.T) {
	m := readyModel(t)
	m, _ = press(t, m, "d")
	m, _ = press(t, m, "y")
	require.Equal(t, modeDeleting, m.slots[1].mode)

	m, cmd := press(t, m, "d")
	assert.Nil(t, cmd)
	assert.Equal(t, modeDeleting, m.slots[1].mode)
}

func TestEdit_PrefillsCurrentInterview(t *testing.T) {
	m := readyModel(t)

	m, _ = press(t, m, "e")
	require.Equal(t, modeEdit, m.slots[1].mode)
	assert.Equal(t, "Archie Cohen", m.studentInput.Value())
	assert.Equal(t, 2, m.slots[1].interviewer)
}

func TestEditCancel_ReturnsToShow(t *testing.T) {
	m := readyModel(t)
	m, _ = press(t, m, "e")

	m, _ = press(t, m, "esc")
	assert.Equal(t, modeShow, m.slots[1].mode)
	assert.Zero(t, m.formSlotID)
}

func TestDayNavigation(t *testing.T) {
	m := readyModel(t)
	require.Equal(t, "Monday", m.currentDay().Name)

	m, _ = press(t, m, "l")
	assert.Equal(t, "Tuesday", m.currentDay().Name)
	assert.Zero(t, m.slotIdx, "day switch resets slot focus")

	m, _ = press(t, m, "h")
	assert.Equal(t, "Monday", m.currentDay().Name)

	m, _ = press(t, m, "h")
	assert.Equal(t, "Monday", m.currentDay().Name, "no wrap before the first day")
}

func TestDaysRefreshFailure_SetsStatus(t *testing.T) {
	m := readyModel(t)

	updated, _ := m.Update(daysMsg{err: errors.New("down")})
	m = updated.(Model)
	assert.NotEmpty(t, m.status)

	updated, _ = m.Update(daysMsg{days: m.days})
	m = updated.(Model)
	assert.Empty(t, m.status)
}

func TestFormatSpots(t *testing.T) {
	assert.Equal(t, "no spots remaining", formatSpots(0))
	assert.Equal(t, "1 spot remaining", formatSpots(1))
	assert.Equal(t, "3 spots remaining", formatSpots(3))
}
