package ui

// State is the visitor-facing UI state driven by the reducers in this package.
type State struct {
	Loading LoadingState `json:"loading"`
	Toast   ToastState   `json:"toast"`
	Modal   ModalState   `json:"modal"`
}

func (s *State) DispatchLoading(a LoadingAction) {
	s.Loading = ReduceLoading(s.Loading, a)
}

func (s *State) DispatchToast(a ToastAction) {
	s.Toast = ReduceToast(s.Toast, a)
}

func (s *State) DispatchModal(a ModalAction) {
	s.Modal = ReduceModal(s.Modal, a)
}
