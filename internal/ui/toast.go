package ui

const (
	ActionSetToast   = "SET_TOAST"
	ActionResetToast = "RESET_TOAST"
)

type ToastAction struct {
	Type    string
	Message string
}

type ToastState struct {
	Open    bool   `json:"open"`
	Message string `json:"message,omitempty"`
}

func SetToast(msg string) ToastAction {
	return ToastAction{Type: ActionSetToast, Message: msg}
}

func ResetToast() ToastAction {
	return ToastAction{Type: ActionResetToast}
}

func ReduceToast(state ToastState, a ToastAction) ToastState {
	switch a.Type {
	case ActionSetToast:
		return ToastState{Open: true, Message: a.Message}
	case ActionResetToast:
		return ToastState{}
	default:
		return state
	}
}
