package shared

import "errors"

// ErrNotConfirmed is returned when the operator declines a confirmation
// prompt. Nothing is sent in that case.
var ErrNotConfirmed = errors.New("action cancelled")

// Confirmer asks the operator to confirm an irreversible action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// AlwaysConfirm answers yes to every prompt.
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })

// Ask runs the prompt through c; a nil Confirmer declines.
func Ask(c Confirmer, prompt string) error {
	if c == nil || !c.Confirm(prompt) {
		return ErrNotConfirmed
	}
	return nil
}
