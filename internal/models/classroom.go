package models

import "time"

// Material is a course resource attached to a classroom.
type Material struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Kind string    `json:"kind"`
	Date time.Time `json:"date"`
}

// Classroom groups a teacher with enrolled students and course materials.
type Classroom struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	TeacherID  string     `json:"teacher_id"`
	StudentIDs []string   `json:"student_ids"`
	Schedule   string     `json:"schedule"`
	Materials  []Material `json:"materials"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Clone returns a copy whose student and material slices do not share
// backing arrays with the receiver.
func (c Classroom) Clone() Classroom {
	c.StudentIDs = append([]string(nil), c.StudentIDs...)
	c.Materials = append([]Material(nil), c.Materials...)
	return c
}

// HasStudent reports whether the given student is enrolled.
func (c Classroom) HasStudent(studentID string) bool {
	for _, id := range c.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}
