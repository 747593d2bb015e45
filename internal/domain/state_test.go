package domain_test

import (
	"encoding/json"
	"testing"

	"rescueops/internal/domain"
)

func TestRequestState_TransitionTable(t *testing.T) {
	t.Parallel()

	legal := map[[2]domain.RequestState]bool{
		{domain.StateSubmitted, domain.StateValidated}: true,
		{domain.StateValidated, domain.StateCancelled}: true,
		{domain.StateValidated, domain.StateActive}:    true,
		{domain.StateActive, domain.StateClosed}:       true,
	}

	for _, from := range domain.AllStates {
		for _, to := range domain.AllStates {
			want := legal[[2]domain.RequestState{from, to}]
			if got := from.CanTransitionTo(to); got != want {
				t.Fatalf("%s -> %s: expected %v got %v", from, to, want, got)
			}
		}
	}
}

func TestRequestState_Terminal(t *testing.T) {
	t.Parallel()

	for _, s := range domain.AllStates {
		want := s == domain.StateCancelled || s == domain.StateClosed
		if s.Terminal() != want {
			t.Fatalf("%s: terminal expected %v", s, want)
		}
	}
	if domain.RequestState(0).Terminal() {
		t.Fatalf("zero state must not be terminal")
	}
}

func TestRequestState_TextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range domain.AllStates {
		parsed, err := domain.ParseRequestState(s.String())
		if err != nil || parsed != s {
			t.Fatalf("parse %q: got %v, %v", s.String(), parsed, err)
		}
	}

	if _, err := domain.ParseRequestState("archived"); err == nil {
		t.Fatalf("expected error for unknown state")
	}

	b, err := json.Marshal(struct {
		State domain.RequestState `json:"state"`
	}{domain.StateActive})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"state":"active"}` {
		t.Fatalf("unexpected json %s", b)
	}
}
