package models

import "time"

// GradePending is the grade value a submission holds until a teacher grades it.
const GradePending = "Pending"

// Submission represents a student's handed-in work for one assignment.
// Submissions are owned by their assignment and never addressed on their own.
type Submission struct {
	StudentID     string    `json:"student_id"`
	FileReference string    `json:"file_reference"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Grade         string    `json:"grade"`
}

// IsGraded reports whether the submission has moved past the pending state.
func (s Submission) IsGraded() bool {
	return s.Grade != "" && s.Grade != GradePending
}

// Assignment represents a piece of classroom work with its submission sequence.
type Assignment struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     time.Time    `json:"due_date"`
	ClassroomID string       `json:"classroom_id"`
	Submissions []Submission `json:"submissions"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Clone returns a copy whose submission slice does not share a backing
// array with the receiver.
func (a Assignment) Clone() Assignment {
	a.Submissions = append([]Submission(nil), a.Submissions...)
	return a
}

// SubmissionFor returns the student's submission and its position, or -1.
func (a Assignment) SubmissionFor(studentID string) (Submission, int) {
	for i, sub := range a.Submissions {
		if sub.StudentID == studentID {
			return sub, i
		}
	}
	return Submission{}, -1
}

// IsPastDue returns true when the assignment deadline has already passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	return reference.After(a.DueDate)
}
