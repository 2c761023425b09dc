package models

import "time"

// Role identifies which portal persona a user acts as.
type Role string

const (
	// RoleTeacher marks a user that owns classrooms and assignments.
	RoleTeacher Role = "teacher"
	// RoleStudent marks a user that submits assignments and receives grades.
	RoleStudent Role = "student"
	// RoleParent marks a user linked to one or more student accounts.
	RoleParent Role = "parent"
)

// Valid reports whether the role is one of the three known personas.
func (r Role) Valid() bool {
	switch r {
	case RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

// TeacherProfile carries the attributes only teacher accounts have.
type TeacherProfile struct {
	Subjects []string `json:"subjects"`
}

// StudentProfile carries the attributes only student accounts have.
type StudentProfile struct {
	GradeLevel string `json:"grade_level"`
}

// ParentProfile carries the attributes only parent accounts have.
type ParentProfile struct {
	ChildIDs []string `json:"child_ids"`
}

// User represents a portal account. Exactly one of the role profile
// pointers is set, matching Role.
type User struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Secret      string          `json:"-"`
	DisplayName string          `json:"display_name"`
	Role        Role            `json:"role"`
	Avatar      string          `json:"avatar"`
	Teacher     *TeacherProfile `json:"teacher,omitempty"`
	Student     *StudentProfile `json:"student,omitempty"`
	Parent      *ParentProfile  `json:"parent,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Clone returns a copy whose role profile does not share memory with the
// receiver.
func (u User) Clone() User {
	if u.Teacher != nil {
		profile := *u.Teacher
		profile.Subjects = append([]string(nil), profile.Subjects...)
		u.Teacher = &profile
	}
	if u.Student != nil {
		profile := *u.Student
		u.Student = &profile
	}
	if u.Parent != nil {
		profile := *u.Parent
		profile.ChildIDs = append([]string(nil), profile.ChildIDs...)
		u.Parent = &profile
	}
	return u
}

// IsTeacher reports whether the account acts as a teacher.
func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// IsStudent reports whether the account acts as a student.
func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}
