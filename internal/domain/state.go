package domain

import (
	"fmt"
	"strings"
)

// RequestState is the lifecycle state of a rescue request.
type RequestState uint8

const (
	StateSubmitted RequestState = iota + 1
	StateValidated
	StateCancelled
	StateActive
	StateClosed
)

// AllStates lists every state in lifecycle order.
var AllStates = []RequestState{StateSubmitted, StateValidated, StateCancelled, StateActive, StateClosed}

var stateNames = map[RequestState]string{
	StateSubmitted: "submitted",
	StateValidated: "validated",
	StateCancelled: "cancelled",
	StateActive:    "active",
	StateClosed:    "closed",
}

// transitions is the complete table of legal moves. Anything missing is illegal.
var transitions = map[RequestState][]RequestState{
	StateSubmitted: {StateValidated},
	StateValidated: {StateCancelled, StateActive},
	StateActive:    {StateClosed},
	StateCancelled: nil,
	StateClosed:    nil,
}

func (s RequestState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

func (s RequestState) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

func (s RequestState) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

func (s RequestState) CanTransitionTo(next RequestState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseRequestState(v string) (RequestState, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for state, name := range stateNames {
		if name == v {
			return state, nil
		}
	}
	return 0, fmt.Errorf("unknown request state %q", v)
}

func (s RequestState) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid request state %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *RequestState) UnmarshalText(text []byte) error {
	parsed, err := ParseRequestState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
