package tui

// slotMode is the interaction state of one appointment card. The set is
// closed; transitions happen only through apply, so an invalid mode/action
// pair is a no-op rather than a corrupt state.
type slotMode int

const (
	modeEmpty slotMode = iota
	modeShow
	modeCreate
	modeEdit
	modeConfirm
	modeDeleting
	modeErrorSave
	modeErrorDelete
)

func (m slotMode) String() string {
	switch m {
	case modeEmpty:
		return "empty"
	case modeShow:
		return "show"
	case modeCreate:
		return "create"
	case modeEdit:
		return "edit"
	case modeConfirm:
		return "confirm"
	case modeDeleting:
		return "deleting"
	case modeErrorSave:
		return "error_save"
	case modeErrorDelete:
		return "error_delete"
	default:
		return "unknown"
	}
}

// slotAction is an event driving the card's state machine. Network results
// arrive as actions too (saveOK/saveFail/deleteOK/deleteFail).
type slotAction int

const (
	actionAdd slotAction = iota
	actionEdit
	actionDelete
	actionConfirm
	actionCancel
	actionSaveOK
	actionSaveFail
	actionDeleteOK
	actionDeleteFail
	actionCloseError
)

// slot tracks one appointment card: its mode plus the form draft. The draft
// survives an ErrorSave round trip so closing the error returns to the form
// with the entered values intact.
type slot struct {
	mode        slotMode
	student     string
	interviewer int // 0 = none selected
}

// newSlot starts in Show when the appointment holds an interview, Empty
// otherwise.
func newSlot(booked bool) *slot {
	if booked {
		return &slot{mode: modeShow}
	}
	return &slot{mode: modeEmpty}
}

// canSave gates the save action: both a student name and an interviewer
// selection are required. While it returns false, save is inert — no
// transition, no request.
func (s *slot) canSave() bool {
	return s.student != "" && s.interviewer != 0
}

// editing reports whether the card currently shows the form.
func (s *slot) editing() bool {
	return s.mode == modeCreate || s.mode == modeEdit
}

// busy reports whether visual interaction is suspended. Only Deleting
// suspends the card; saves intentionally have no loading state.
func (s *slot) busy() bool {
	return s.mode == modeDeleting
}

// apply performs the transition for action in the current mode and reports
// whether anything changed.
func (s *slot) apply(action slotAction) bool {
	switch s.mode {
	case modeEmpty:
		if action == actionAdd {
			s.student = ""
			s.interviewer = 0
			s.mode = modeCreate
			return true
		}

	case modeShow:
		switch action {
		case actionEdit:
			s.mode = modeEdit
			return true
		case actionDelete:
			s.mode = modeConfirm
			return true
		}

	case modeCreate:
		switch action {
		case actionCancel:
			s.student = ""
			s.interviewer = 0
			s.mode = modeEmpty
			return true
		case actionSaveOK:
			s.mode = modeShow
			return true
		case actionSaveFail:
			s.mode = modeErrorSave
			return true
		}

	case modeEdit:
		switch action {
		case actionCancel:
			s.mode = modeShow
			return true
		case actionSaveOK:
			s.mode = modeShow
			return true
		case actionSaveFail:
			s.mode = modeErrorSave
			return true
		}

	case modeConfirm:
		switch action {
		case actionConfirm:
			s.mode = modeDeleting
			return true
		case actionCancel:
			s.mode = modeShow
			return true
		}

	case modeDeleting:
		switch action {
		case actionDeleteOK:
			s.student = ""
			s.interviewer = 0
			s.mode = modeEmpty
			return true
		case actionDeleteFail:
			s.mode = modeErrorDelete
			return true
		}

	case modeErrorSave:
		if action == actionCloseError {
			// Back to the form; the draft is still in place. A failed edit
			// also lands on the create form, matching the original client.
			s.mode = modeCreate
			return true
		}

	case modeErrorDelete:
		if action == actionCloseError {
			s.mode = modeShow
			return true
		}
	}

	return false
}
