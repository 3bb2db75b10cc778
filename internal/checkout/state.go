package checkout

import (
	"fmt"

	"brewshop/internal/ui"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for candidate := PhaseIdle; candidate <= PhaseFailed; candidate++ {
		if candidate.String() == string(b) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown checkout phase %q", b)
}

// ErrorsHook observes the error map after every applied errors action.
type ErrorsHook func(errs ui.ErrorsState)

// State is the checkout state of one visitor: current phase, field errors and
// the last submitted form (without card data).
type State struct {
	phase    Phase
	errors   ui.ErrorsState
	draft    Form
	onErrors ErrorsHook
}

func NewState() *State {
	return &State{errors: ui.ErrorsState{}}
}

func (s *State) OnErrors(h ErrorsHook) {
	s.onErrors = h
}

// DispatchErrors reduces a into the error map and notifies the hook.
func (s *State) DispatchErrors(a ui.ErrorsAction) {
	switch a.Type {
	case ui.ActionPaymentFailed, ui.ActionResetError:
	default:
		return
	}
	s.errors = ui.ReduceErrors(s.errors, a)
	if s.onErrors != nil {
		s.onErrors(s.Errors())
	}
}

func (s *State) Phase() Phase { return s.phase }

func (s *State) Errors() ui.ErrorsState {
	out := make(ui.ErrorsState, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

func (s *State) Draft() Form { return s.draft }

// ModalOnPaymentFailure returns an ErrorsHook that opens the modal whenever the
// error map carries a payment failure.
func ModalOnPaymentFailure(u *ui.State) ErrorsHook {
	return func(errs ui.ErrorsState) {
		if msg, ok := errs[ui.PaymentFailedKey]; ok && msg != "" {
			u.DispatchModal(ui.OpenModal(msg))
		}
	}
}
