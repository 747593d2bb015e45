package domain

import (
	"fmt"
	"strings"
	"time"
)

type OperatorRole uint8

const (
	RoleCaposquadra OperatorRole = iota + 1
	RoleStandard
)

func (r OperatorRole) String() string {
	switch r {
	case RoleCaposquadra:
		return "caposquadra"
	case RoleStandard:
		return "standard"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

func ParseOperatorRole(v string) (OperatorRole, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "caposquadra":
		return RoleCaposquadra, nil
	case "standard":
		return RoleStandard, nil
	default:
		return 0, fmt.Errorf("unknown operator role %q", v)
	}
}

func (r OperatorRole) MarshalText() ([]byte, error) {
	if r != RoleCaposquadra && r != RoleStandard {
		return nil, fmt.Errorf("invalid operator role %d", uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *OperatorRole) UnmarshalText(text []byte) error {
	parsed, err := ParseOperatorRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

type Mission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Objective string    `json:"objective"`
	Note      string    `json:"note"`
	StartedAt time.Time `json:"started_at"`
	CreatedBy int64     `json:"created_by"`
	Version   int       `json:"version"`
}

type TeamMember struct {
	OperatorID int64        `json:"operator_id"`
	Role       OperatorRole `json:"role"`
}

type TeamAssignment struct {
	MissionID  int64        `json:"mission_id"`
	OperatorID int64        `json:"operator_id"`
	Role       OperatorRole `json:"role"`
}

type VehicleAssignment struct {
	MissionID int64  `json:"mission_id"`
	Plate     string `json:"plate"`
}

type MaterialAssignment struct {
	MissionID  int64 `json:"mission_id"`
	MaterialID int64 `json:"material_id"`
}

const (
	MinSuccessLevel = 1
	MaxSuccessLevel = 5
)

type MissionOutcome struct {
	MissionID    int64     `json:"mission_id"`
	SuccessLevel int       `json:"success_level"`
	Comment      string    `json:"comment"`
	EndedAt      time.Time `json:"ended_at"`
}

type CreateMissionInput struct {
	RequestID int64
	Name      string
	Location  string
	Objective string
	// Team carries explicit roles. When empty, Operators is used as a legacy
	// undifferentiated list.
	Team          []TeamMember
	Operators     []int64
	VehiclePlates []string
	MaterialIDs   []int64
	AdminID       int64
}

// ResolveTeam returns the team with roles assigned and duplicate operators
// removed. A legacy list makes its first operator the Caposquadra.
func ResolveTeam(team []TeamMember, legacy []int64) []TeamMember {
	if len(team) == 0 {
		team = make([]TeamMember, 0, len(legacy))
		for i, id := range legacy {
			role := RoleStandard
			if i == 0 {
				role = RoleCaposquadra
			}
			team = append(team, TeamMember{OperatorID: id, Role: role})
		}
	}

	seen := make(map[int64]struct{}, len(team))
	out := make([]TeamMember, 0, len(team))
	for _, m := range team {
		if _, ok := seen[m.OperatorID]; ok {
			continue
		}
		seen[m.OperatorID] = struct{}{}
		out = append(out, m)
	}
	return out
}

func HasCaposquadra(team []TeamMember) bool {
	for _, m := range team {
		if m.Role == RoleCaposquadra {
			return true
		}
	}
	return false
}

// NormalizePlates trims and upper-cases plates, dropping blanks and repeats.
func NormalizePlates(plates []string) []string {
	seen := make(map[string]struct{}, len(plates))
	out := make([]string, 0, len(plates))
	for _, p := range plates {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// MissionAssignment is what CreateMission hands back: the mission, what was
// assigned to it and who should be told.
type MissionAssignment struct {
	Mission        *Mission             `json:"mission"`
	Team           []TeamAssignment     `json:"team"`
	Vehicles       []VehicleAssignment  `json:"vehicles"`
	Materials      []MaterialAssignment `json:"materials"`
	OperatorEmails []string             `json:"operator_emails"`
}

type CloseMissionInput struct {
	MissionID    int64
	SuccessLevel int
	Comment      string
	ClosedBy     int64
}

// MissionResources is what was assigned to a mission when it was created.
type MissionResources struct {
	Team      []TeamAssignment     `json:"team"`
	Vehicles  []VehicleAssignment  `json:"vehicles"`
	Materials []MaterialAssignment `json:"materials"`
}

// MissionDetail is a mission as read back after creation. Outcome stays nil
// until the mission is closed.
type MissionDetail struct {
	Mission *Mission `json:"mission"`
	MissionResources
	Outcome *MissionOutcome `json:"outcome,omitempty"`
}

// RequestDetail is a request with the mission dispatched for it, if any.
type RequestDetail struct {
	Request *RescueRequest `json:"request"`
	Mission *MissionDetail `json:"mission,omitempty"`
}
