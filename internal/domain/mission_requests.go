package domain

import "strings"

// CreateMissionRequest is the admin payload for dispatching a mission.
type CreateMissionRequest struct {
	RequestID   int64    `json:"request_id" validate:"required,gt=0"`
	Name        string   `json:"name" validate:"required,max=255"`
	Location    string   `json:"location" validate:"max=255"`
	Objective   string   `json:"objective"`
	Caposquadra []int64  `json:"caposquadra" validate:"dive,gt=0"`
	Standard    []int64  `json:"standard" validate:"dive,gt=0"`
	Operators   []int64  `json:"operators" validate:"dive,gt=0"`
	Vehicles    []string `json:"vehicles" validate:"dive,plate"`
	Materials   []int64  `json:"materials" validate:"dive,gt=0"`
}

// MixesTeamLists reports a payload that sends the legacy operators list
// together with explicit roles. Such a payload has no single reading.
func (r CreateMissionRequest) MixesTeamLists() bool {
	return len(r.Operators) > 0 && (len(r.Caposquadra) > 0 || len(r.Standard) > 0)
}

func (r CreateMissionRequest) ToInput(adminID int64) CreateMissionInput {
	var team []TeamMember
	for _, id := range r.Caposquadra {
		team = append(team, TeamMember{OperatorID: id, Role: RoleCaposquadra})
	}
	for _, id := range r.Standard {
		team = append(team, TeamMember{OperatorID: id, Role: RoleStandard})
	}
	return CreateMissionInput{
		RequestID:     r.RequestID,
		Name:          strings.TrimSpace(r.Name),
		Location:      strings.TrimSpace(r.Location),
		Objective:     strings.TrimSpace(r.Objective),
		Team:          team,
		Operators:     r.Operators,
		VehiclePlates: r.Vehicles,
		MaterialIDs:   r.Materials,
		AdminID:       adminID,
	}
}

type CloseMissionRequest struct {
	SuccessLevel int    `json:"success_level"`
	Comment      string `json:"comment"`
}

// ConfirmByIDRequest leaves the blank token check to the lifecycle, which
// reports it as INVALID_TOKEN.
type ConfirmByIDRequest struct {
	Token string `json:"token"`
}
