// Package ui holds the small reducers behind the storefront's loading
// indicator, toast, modal and checkout error display.
package ui

const (
	ActionSetLoading   = "SET_LOADING"
	ActionResetLoading = "RESET_LOADING"
)

type LoadingAction struct {
	Type    string
	Message string
}

type LoadingState struct {
	Loading bool   `json:"loading"`
	Message string `json:"message,omitempty"`
}

func SetLoading(msg string) LoadingAction {
	return LoadingAction{Type: ActionSetLoading, Message: msg}
}

func ResetLoading() LoadingAction {
	return LoadingAction{Type: ActionResetLoading}
}

func ReduceLoading(state LoadingState, a LoadingAction) LoadingState {
	switch a.Type {
	case ActionSetLoading:
		return LoadingState{Loading: true, Message: a.Message}
	case ActionResetLoading:
		return LoadingState{}
	default:
		return state
	}
}
