package dto

import (
	"time"

	"github.com/noah-isme/edu-portal/internal/models"
)

// CreateAssignmentRequest carries the fields for a new assignment.
type CreateAssignmentRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	ClassroomID string    `json:"classroom_id" validate:"required"`
}

// SubmitAssignmentRequest hands in work for an assignment. Resubmit must be
// set explicitly to replace an earlier submission; otherwise a second
// submission by the same student is rejected.
type SubmitAssignmentRequest struct {
	AssignmentID  string `json:"assignment_id" validate:"required"`
	StudentID     string `json:"student_id" validate:"required"`
	FileReference string `json:"file_reference" validate:"required"`
	Resubmit      bool   `json:"resubmit"`
}

// CreateAnnouncementRequest carries the fields for a new announcement.
type CreateAnnouncementRequest struct {
	Title      string    `json:"title" validate:"required"`
	Message    string    `json:"message" validate:"required"`
	AuthorName string    `json:"author_name" validate:"required"`
	Date       time.Time `json:"date"`
}

// AssignmentView pairs an assignment with the viewing student's submission
// state. For teacher viewers Submitted is always false and Submission nil.
type AssignmentView struct {
	Assignment models.Assignment  `json:"assignment"`
	Submitted  bool               `json:"submitted"`
	Submission *models.Submission `json:"submission,omitempty"`
}

// StudentDashboard aggregates a student's standing across assignments and
// grades. CacheHit reports whether the value was served from the cache.
type StudentDashboard struct {
	StudentID        string    `json:"student_id"`
	TotalAssignments int       `json:"total_assignments"`
	Submitted        int       `json:"submitted"`
	Pending          int       `json:"pending"`
	Graded           int       `json:"graded"`
	AverageGrade     *float64  `json:"average_grade,omitempty"`
	GeneratedAt      time.Time `json:"generated_at"`
	CacheHit         bool      `json:"cache_hit"`
}
