package handlers

import (
	"smartread/internal/models"
)

// GateOutcome is the result of an access check on a role-gated page.
type GateOutcome int

const (
	// GateRender lets the request through to the page.
	GateRender GateOutcome = iota
	// GateRedirectLogin sends anonymous visitors to the login page.
	GateRedirectLogin
	// GateRedirectHome sends a signed-in visitor with the wrong role to
	// their own dashboard.
	GateRedirectHome
)

// DecideGate checks an identity against the roles allowed on a page.
// It never errors: every input maps to a render or a redirect target.
func DecideGate(required []models.Role, user *models.User) (GateOutcome, string) {
	if user == nil {
		return GateRedirectLogin, "/login"
	}

	for _, role := range required {
		if user.Role == role {
			return GateRender, ""
		}
	}

	return GateRedirectHome, user.Role.HomePath()
}
