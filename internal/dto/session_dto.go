package dto

// RegisterRequest carries the fields needed to create a portal account.
// The role-specific fields are read according to Role; the rest are ignored.
type RegisterRequest struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Secret     string   `json:"secret" validate:"required"`
	Role       string   `json:"role" validate:"required,oneof=teacher student parent"`
	Avatar     string   `json:"avatar"`
	Subjects   []string `json:"subjects"`
	GradeLevel string   `json:"grade_level"`
	ChildIDs   []string `json:"child_ids"`
}
