package ui

const (
	ActionOpenModal  = "OPEN_MODAL"
	ActionCloseModal = "CLOSE_MODAL"
)

type ModalAction struct {
	Type    string
	Message string
}

type ModalState struct {
	Open    bool   `json:"open"`
	Message string `json:"message,omitempty"`
}

func OpenModal(msg string) ModalAction {
	return ModalAction{Type: ActionOpenModal, Message: msg}
}

func CloseModal() ModalAction {
	return ModalAction{Type: ActionCloseModal}
}

func ReduceModal(state ModalState, a ModalAction) ModalState {
	switch a.Type {
	case ActionOpenModal:
		return ModalState{Open: true, Message: a.Message}
	case ActionCloseModal:
		return ModalState{}
	default:
		return state
	}
}
