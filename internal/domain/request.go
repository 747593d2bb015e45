package domain

import (
	"strings"
	"time"
)

type RescueRequest struct {
	ID                int64        `json:"id"`
	State             RequestState `json:"state"`
	Address           string       `json:"address"`
	Description       string       `json:"description"`
	IncidentName      string       `json:"incident_name"`
	ReporterEmail     string       `json:"reporter_email"`
	ReporterName      string       `json:"reporter_name"`
	Coordinates       *string      `json:"coordinates,omitempty"`
	Photo             *string      `json:"photo,omitempty"`
	SourceIP          string       `json:"-"`
	ConfirmationToken string       `json:"-"`
	AssignedAdminID   *int64       `json:"assigned_admin_id,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// SubmitRequestInput is the public intake form. Field order is validation order.
type SubmitRequestInput struct {
	Description   string `json:"description" validate:"required,min=10"`
	Address       string `json:"address" validate:"required"`
	IncidentName  string `json:"incident_name" validate:"required"`
	ReporterEmail string `json:"reporter_email" validate:"required,reporter_email"`
	ReporterName  string `json:"reporter_name" validate:"required"`
	Coordinates   string `json:"coordinates,omitempty"`
	Photo         string `json:"photo,omitempty"`
	SourceIP      string `json:"-"`
}

func (in SubmitRequestInput) Normalize() SubmitRequestInput {
	return SubmitRequestInput{
		Description:   strings.TrimSpace(in.Description),
		Address:       strings.TrimSpace(in.Address),
		IncidentName:  strings.TrimSpace(in.IncidentName),
		ReporterEmail: NormalizeEmail(in.ReporterEmail),
		ReporterName:  strings.TrimSpace(in.ReporterName),
		Coordinates:   strings.TrimSpace(in.Coordinates),
		Photo:         strings.TrimSpace(in.Photo),
		SourceIP:      strings.TrimSpace(in.SourceIP),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// OptionalString returns nil for blank values.
func OptionalString(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

type ConfirmationStatus string

const (
	ConfirmationApplied  ConfirmationStatus = "confirmed"
	ConfirmationRepeated ConfirmationStatus = "already_confirmed"
)

// Confirmation is the outcome of a token confirmation. A repeated confirmation
// is a warning, not a failure.
type Confirmation struct {
	Request *RescueRequest     `json:"request"`
	Status  ConfirmationStatus `json:"status"`
}

func (c Confirmation) Warning() bool {
	return c.Status == ConfirmationRepeated
}

type RequestFilter struct {
	State *RequestState
	Page  int
	Limit int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps paging to page >= 1 and limit in 1..MaxPageLimit.
func (f RequestFilter) Normalize() RequestFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	return f
}

// States returns the states the filter selects. Without an explicit state every
// state except Submitted is listed, unconfirmed requests stay private.
func (f RequestFilter) States() []RequestState {
	if f.State != nil {
		return []RequestState{*f.State}
	}
	return []RequestState{StateValidated, StateCancelled, StateActive, StateClosed}
}

func (f RequestFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type RequestPage struct {
	Requests []*RescueRequest `json:"requests"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Total    int64            `json:"total"`
}
