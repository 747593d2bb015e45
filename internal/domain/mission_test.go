package domain_test

import (
	"reflect"
	"testing"

	"rescueops/internal/domain"
)

func TestResolveTeam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		team   []domain.TeamMember
		legacy []int64
		want   []domain.TeamMember
	}{
		{
			name:   "legacy list first is caposquadra",
			legacy: []int64{7, 3, 9},
			want: []domain.TeamMember{
				{OperatorID: 7, Role: domain.RoleCaposquadra},
				{OperatorID: 3, Role: domain.RoleStandard},
				{OperatorID: 9, Role: domain.RoleStandard},
			},
		},
		{
			name:   "explicit team wins over legacy",
			team:   []domain.TeamMember{{OperatorID: 2, Role: domain.RoleStandard}},
			legacy: []int64{1},
			want:   []domain.TeamMember{{OperatorID: 2, Role: domain.RoleStandard}},
		},
		{
			name: "duplicates keep first role",
			team: []domain.TeamMember{
				{OperatorID: 1, Role: domain.RoleCaposquadra},
				{OperatorID: 1, Role: domain.RoleStandard},
			},
			want: []domain.TeamMember{{OperatorID: 1, Role: domain.RoleCaposquadra}},
		},
		{
			name: "empty",
			want: []domain.TeamMember{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := domain.ResolveTeam(tt.team, tt.legacy)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
		})
	}
}

func TestCreateMissionRequest_MixesTeamLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  domain.CreateMissionRequest
		want bool
	}{
		{"legacy only", domain.CreateMissionRequest{Operators: []int64{1, 3}}, false},
		{"explicit only", domain.CreateMissionRequest{Caposquadra: []int64{1}, Standard: []int64{2}}, false},
		{"standard with legacy", domain.CreateMissionRequest{Standard: []int64{2}, Operators: []int64{1, 3}}, true},
		{"caposquadra with legacy", domain.CreateMissionRequest{Caposquadra: []int64{1}, Operators: []int64{3}}, true},
		{"empty legacy list", domain.CreateMissionRequest{Standard: []int64{2}, Operators: []int64{}}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.req.MixesTeamLists(); got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestHasCaposquadra(t *testing.T) {
	t.Parallel()

	if domain.HasCaposquadra([]domain.TeamMember{{OperatorID: 2, Role: domain.RoleStandard}}) {
		t.Fatalf("standard-only team has no caposquadra")
	}
	if !domain.HasCaposquadra([]domain.TeamMember{{OperatorID: 2, Role: domain.RoleStandard}, {OperatorID: 1, Role: domain.RoleCaposquadra}}) {
		t.Fatalf("expected caposquadra")
	}
}

func TestNormalizePlates(t *testing.T) {
	t.Parallel()

	got := domain.NormalizePlates([]string{" ab123cd ", "", "AB123CD", "zz999zz"})
	want := []string{"AB123CD", "ZZ999ZZ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestOperatorRole_Text(t *testing.T) {
	t.Parallel()

	var r domain.OperatorRole
	if err := r.UnmarshalText([]byte("Caposquadra")); err != nil || r != domain.RoleCaposquadra {
		t.Fatalf("got %v, %v", r, err)
	}
	if err := r.UnmarshalText([]byte("leader")); err == nil {
		t.Fatalf("expected error")
	}
}
