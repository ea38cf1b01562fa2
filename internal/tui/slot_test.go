package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot_InitialMode(t *testing.T) {
	assert.Equal(t, modeShow, newSlot(true).mode)
	assert.Equal(t, modeEmpty, newSlot(false).mode)
}

func TestSlot_CreateFlow(t *testing.T) {
	s := newSlot(false)

	require.True(t, s.apply(actionAdd))
	assert.Equal(t, modeCreate, s.mode)

	s.student = "Ada"
	s.interviewer = 2
	require.True(t, s.apply(actionSaveOK))
	assert.Equal(t, modeShow, s.mode)
}

func TestSlot_CreateCancel_ResetsDraft(t *testing.T) {
	s := newSlot(false)
	s.apply(actionAdd)
	s.student = "Ada"
	s.interviewer = 2

	require.True(t, s.apply(actionCancel))
	assert.Equal(t, modeEmpty, s.mode)
	assert.Empty(t, s.student)
	assert.Zero(t, s.interviewer)
}

func TestSlot_SaveGate(t *testing.T) {
	s := newSlot(false)
	s.apply(actionAdd)

	assert.False(t, s.canSave(), "empty form must not save")

	s.student = "Ada"
	assert.False(t, s.canSave(), "missing interviewer must not save")

	s.student = ""
	s.interviewer = 1
	assert.False(t, s.canSave(), "missing student must not save")

	s.student = "Ada"
	assert.True(t, s.canSave())
}

func TestSlot_EditFlow(t *testing.T) {
	s := newSlot(true)

	require.True(t, s.apply(actionEdit))
	assert.Equal(t, modeEdit, s.mode)

	require.True(t, s.apply(actionCancel))
	assert.Equal(t, modeShow, s.mode, "cancelling an edit returns to the read view")
}

func TestSlot_DeleteFlow(t *testing.T) {
	s := newSlot(true)

	require.True(t, s.apply(actionDelete))
	assert.Equal(t, modeConfirm, s.mode)

	require.True(t, s.apply(actionConfirm))
	assert.Equal(t, modeDeleting, s.mode)
	assert.True(t, s.busy(), "only deleting suspends the card")

	require.True(t, s.apply(actionDeleteOK))
	assert.Equal(t, modeEmpty, s.mode)
}

func TestSlot_ConfirmCancel(t *testing.T) {
	s := newSlot(true)
	s.apply(actionDelete)

	require.True(t, s.apply(actionCancel))
	assert.Equal(t, modeShow, s.mode)
}

func TestSlot_SaveFailure_KeepsDraft(t *testing.T) {
	s := newSlot(false)
	s.apply(actionAdd)
	s.student = "Ada"
	s.interviewer = 2

	require.True(t, s.apply(actionSaveFail))
	assert.Equal(t, modeErrorSave, s.mode)

	require.True(t, s.apply(actionCloseError))
	assert.Equal(t, modeCreate, s.mode)
	assert.Equal(t, "Ada", s.student)
	assert.Equal(t, 2, s.interviewer)
}

func TestSlot_DeleteFailure(t *testing.T) {
	s := newSlot(true)
	s.apply(actionDelete)
	s.apply(actionConfirm)

	require.True(t, s.apply(actionDeleteFail))
	assert.Equal(t, modeErrorDelete, s.mode)

	require.True(t, s.apply(actionCloseError))
	assert.Equal(t, modeShow, s.mode, "closing a delete error returns to the read view")
}

func TestSlot_InvalidActionsAreNoOps(t *testing.T) {
	cases := []struct {
		mode   slotMode
		action slotAction
	}{
		{modeEmpty, actionEdit},
		{modeEmpty, actionConfirm},
		{modeShow, actionAdd},
		{modeShow, actionSaveOK},
		{modeCreate, actionDelete},
		{modeConfirm, actionAdd},
		{modeDeleting, actionCancel},
		{modeDeleting, actionAdd},
		{modeErrorSave, actionSaveOK},
	}
	for _, tc := range cases {
		s := &slot{mode: tc.mode}
		assert.False(t, s.apply(tc.action), "%s + action %d must be a no-op", tc.mode, tc.action)
		assert.Equal(t, tc.mode, s.mode)
	}
}

func TestSlot_NotBusyOutsideDeleting(t *testing.T) {
	for _, m := range []slotMode{modeEmpty, modeShow, modeCreate, modeEdit, modeConfirm, modeErrorSave, modeErrorDelete} {
		s := &slot{mode: m}
		assert.False(t, s.busy(), "%s must not suspend interaction", m)
	}
}
