package handlers

import (
	"testing"

	"smartread/internal/models"
)

func TestDecideGate(t *testing.T) {
	student := &models.User{ID: 1, Username: "Alex", Role: models.RoleStudent}
	admin := &models.User{ID: 2, Username: "Admin Johnson", Role: models.RoleAdmin}
	guardian := &models.User{ID: 3, Username: "Pat", Role: models.RoleGuardian}

	tests := []struct {
		name     string
		required []models.Role
		user     *models.User
		want     GateOutcome
		wantPath string
	}{
		{
			name:     "anonymous visitor is sent to login",
			required: []models.Role{models.RoleStudent},
			user:     nil,
			want:     GateRedirectLogin,
			wantPath: "/login",
		},
		{
			name:     "matching role renders",
			required: []models.Role{models.RoleStudent},
			user:     student,
			want:     GateRender,
		},
		{
			name:     "any of several roles renders",
			required: []models.Role{models.RoleAdmin, models.RoleGuardian},
			user:     guardian,
			want:     GateRender,
		},
		{
			name:     "wrong role goes to own dashboard",
			required: []models.Role{models.RoleAdmin},
			user:     student,
			want:     GateRedirectHome,
			wantPath: "/student",
		},
		{
			name:     "admin blocked from student page",
			required: []models.Role{models.RoleStudent},
			user:     admin,
			want:     GateRedirectHome,
			wantPath: "/admin",
		},
		{
			name:     "guardian blocked from admin page",
			required: []models.Role{models.RoleAdmin},
			user:     guardian,
			want:     GateRedirectHome,
			wantPath: "/guardian",
		},
		{
			name:     "empty required list never renders",
			required: nil,
			user:     admin,
			want:     GateRedirectHome,
			wantPath: "/admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, path := DecideGate(tt.required, tt.user)
			if got != tt.want {
				t.Errorf("DecideGate() outcome = %v, want %v", got, tt.want)
			}
			if path != tt.wantPath {
				t.Errorf("DecideGate() path = %q, want %q", path, tt.wantPath)
			}
		})
	}
}

func TestDecideGateNeverPanics(t *testing.T) {
	// Unknown roles still resolve to a redirect target
	odd := &models.User{ID: 9, Role: models.Role("visitor")}
	got, path := DecideGate([]models.Role{models.RoleAdmin}, odd)
	if got != GateRedirectHome || path != "/" {
		t.Errorf("DecideGate(unknown role) = %v %q, want redirect to /", got, path)
	}
}
