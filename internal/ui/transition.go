package ui

// Action is what a screen asks the navigator to do with the stack after one
// input cycle.
type Action int

const (
	// ActionStay leaves the stack untouched.
	ActionStay Action = iota
	// ActionPush instantiates Target and makes it the new top.
	ActionPush
	// ActionExit pops the current top; popping the last screen ends the run.
	ActionExit
)

// Transition is the outcome a screen reports from HandleKey. EntityID
// parameterizes edit screens, Message parameterizes the error screen; both
// are zero otherwise.
type Transition struct {
	Action   Action
	Target   ScreenID
	EntityID int64
	Message  string
}

// Stay reports no stack change.
func Stay() Transition {
	return Transition{Action: ActionStay}
}

// Exit pops the current screen.
func Exit() Transition {
	return Transition{Action: ActionExit}
}

// Push opens the named screen on top of the current one.
func Push(target ScreenID) Transition {
	return Transition{Action: ActionPush, Target: target}
}

// PushEdit opens an edit screen for the entity with the given id.
func PushEdit(target ScreenID, entityID int64) Transition {
	return Transition{Action: ActionPush, Target: target, EntityID: entityID}
}

// PushError opens the error screen carrying a human-readable message.
func PushError(message string) Transition {
	return Transition{Action: ActionPush, Target: ScreenError, Message: message}
}
