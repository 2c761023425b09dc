package models

// Grade is one subject grade line for a student. Well-formed data holds at
// most one record per (student, subject) pair.
type Grade struct {
	StudentID string `json:"student_id"`
	Subject   string `json:"subject"`
	Letter    string `json:"letter"`
	Progress  int    `json:"progress"`
}

// Key returns the composite identity used by the grade collection.
func (g Grade) Key() string {
	return g.StudentID + "/" + g.Subject
}
