package domain

import (
	"encoding/json"
	"time"
)

const (
	NoticeRequestSubmitted = "request.submitted"
	NoticeMissionCreated   = "mission.created"
)

// SubmissionNotice asks the mailer to send the confirmation link.
type SubmissionNotice struct {
	RequestID    int64     `json:"request_id"`
	Email        string    `json:"email"`
	ReporterName string    `json:"reporter_name"`
	IncidentName string    `json:"incident_name"`
	Token        string    `json:"token"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// MissionNotice tells the assigned operators about a new mission.
type MissionNotice struct {
	MissionID  int64     `json:"mission_id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Recipients []string  `json:"recipients"`
	CreatedAt  time.Time `json:"created_at"`
}

// Envelope is the queued form of a notice.
type Envelope struct {
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}
