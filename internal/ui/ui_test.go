package ui

import "testing"

func TestReduceLoading(t *testing.T) {
	s := ReduceLoading(LoadingState{}, SetLoading("Submitting Order, please wait..."))
	if !s.Loading || s.Message != "Submitting Order, please wait..." {
		t.Fatalf("unexpected loading state %+v", s)
	}
	s = ReduceLoading(s, LoadingAction{Type: "NOPE"})
	if !s.Loading {
		t.Fatalf("unknown action must keep state")
	}
	s = ReduceLoading(s, ResetLoading())
	if s.Loading || s.Message != "" {
		t.Fatalf("expected reset loading, got %+v", s)
	}
}

func TestReduceToast(t *testing.T) {
	s := ReduceToast(ToastState{}, SetToast("thanks"))
	if !s.Open || s.Message != "thanks" {
		t.Fatalf("unexpected toast %+v", s)
	}
	if s = ReduceToast(s, ResetToast()); s.Open {
		t.Fatalf("expected closed toast")
	}
}

func TestReduceModal(t *testing.T) {
	s := ReduceModal(ModalState{}, OpenModal("card declined"))
	if !s.Open || s.Message != "card declined" {
		t.Fatalf("unexpected modal %+v", s)
	}
	if s = ReduceModal(s, CloseModal()); s.Open || s.Message != "" {
		t.Fatalf("expected closed modal, got %+v", s)
	}
}

func TestReduceErrors(t *testing.T) {
	s := ReduceErrors(nil, PaymentFailed("address", "address is required"))
	s = ReduceErrors(s, PaymentFailed(PaymentFailedKey, "card declined"))
	if len(s) != 2 || s["address"] != "address is required" || s[PaymentFailedKey] != "card declined" {
		t.Fatalf("unexpected errors %+v", s)
	}

	prev := s
	_ = ReduceErrors(prev, PaymentFailed("zip", "zip is required"))
	if _, ok := prev["zip"]; ok {
		t.Fatalf("reducer mutated input map")
	}

	if s = ReduceErrors(s, ResetError()); len(s) != 0 {
		t.Fatalf("expected empty errors, got %+v", s)
	}
}
