package models

import "time"

// Enrollment pairs a course with the student's per-section completion state.
// Progress holds one entry per section that existed on the course at
// enrollment time, keyed by section id.
type Enrollment struct {
	CourseID string          `json:"id"`
	Progress map[string]bool `json:"progress"`
}

// EnrolledCourse is the live join of an enrollment record with its course's
// current detail.
type EnrolledCourse struct {
	Course
	Progress       map[string]bool `json:"progress"`
	CompletionRate float64         `json:"completionRate"`
}

type Certificate struct {
	StudentName string    `json:"studentName"`
	CourseTitle string    `json:"courseTitle"`
	Educator    string    `json:"educator"`
	IssuedAt    time.Time `json:"issuedAt"`
}
