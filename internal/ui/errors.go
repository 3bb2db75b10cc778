package ui

const (
	ActionPaymentFailed = "PAYMENT_FAILED"
	ActionResetError    = "RESET_ERROR"
)

// PaymentFailedKey is the error-map key carrying a payment failure message.
const PaymentFailedKey = "payment_failed"

// ErrorsAction updates the checkout error map. Errors is merged on PAYMENT_FAILED.
type ErrorsAction struct {
	Type   string
	Errors map[string]string
}

// ErrorsState maps a form field (or PaymentFailedKey) to its message.
type ErrorsState map[string]string

func PaymentFailed(field, msg string) ErrorsAction {
	return ErrorsAction{Type: ActionPaymentFailed, Errors: map[string]string{field: msg}}
}

func ResetError() ErrorsAction {
	return ErrorsAction{Type: ActionResetError}
}

func ReduceErrors(state ErrorsState, a ErrorsAction) ErrorsState {
	switch a.Type {
	case ActionPaymentFailed:
		next := make(ErrorsState, len(state)+len(a.Errors))
		for k, v := range state {
			next[k] = v
		}
		for k, v := range a.Errors {
			next[k] = v
		}
		return next
	case ActionResetError:
		return ErrorsState{}
	default:
		return state
	}
}
