package models

import "time"

// Student is a roster row with progress figures read by the dashboards.
// Nothing in the app mutates the progress fields; they are maintained
// outside this system and presented as-is.
type Student struct {
	ID               int64
	Name             string
	GradeLevel       string
	Progress         int // 0-100 percentage
	CompletedLessons int
	TotalLessons     int
	Achievements     int
	StudyHours       int
	LastActivity     string
	CreatedAt        time.Time
}
