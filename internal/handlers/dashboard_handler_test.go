package handlers

import (
	"testing"

	"smartread/internal/models"
)

func catalogueOf(n int) []models.Lesson {
	lessons := make([]models.Lesson, n)
	for i := range lessons {
		lessons[i] = models.Lesson{ID: int64(i + 1)}
	}
	return lessons
}

func TestDashboardSections(t *testing.T) {
	tests := []struct {
		name         string
		catalogue    int
		wantContinue int
		wantAchieved int
	}{
		{name: "full catalogue", catalogue: 6, wantContinue: 2, wantAchieved: 2},
		{name: "four lessons", catalogue: 4, wantContinue: 2, wantAchieved: 1},
		{name: "two lessons", catalogue: 2, wantContinue: 1, wantAchieved: 0},
		{name: "one lesson", catalogue: 1, wantContinue: 0, wantAchieved: 0},
		{name: "empty catalogue", catalogue: 0, wantContinue: 0, wantAchieved: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			continueLessons, achievements := dashboardSections(catalogueOf(tt.catalogue))
			if len(continueLessons) != tt.wantContinue {
				t.Errorf("continue section has %d lessons, want %d", len(continueLessons), tt.wantContinue)
			}
			if len(achievements) != tt.wantAchieved {
				t.Errorf("achievements section has %d lessons, want %d", len(achievements), tt.wantAchieved)
			}
		})
	}
}

func TestDashboardSectionsAreDisjoint(t *testing.T) {
	continueLessons, achievements := dashboardSections(catalogueOf(6))
	seen := map[int64]bool{}
	for _, l := range continueLessons {
		seen[l.ID] = true
	}
	for _, l := range achievements {
		if seen[l.ID] {
			t.Errorf("lesson %d appears in both sections", l.ID)
		}
	}
}

func TestStudentIdentity(t *testing.T) {
	student := &models.Student{ID: 7, Name: "Alex Johnson"}
	user := StudentIdentity(student)

	if user.Role != models.RoleStudent {
		t.Errorf("role = %v, want student", user.Role)
	}
	if user.Username != "Alex Johnson" {
		t.Errorf("username = %q, want roster name", user.Username)
	}
	if user.ID >= 0 {
		t.Errorf("id = %d, roster identities must not collide with account ids", user.ID)
	}
}
