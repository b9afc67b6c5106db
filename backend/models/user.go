package models

type UserRole string

const (
	RoleStudent UserRole = "Student"
	RoleTeacher UserRole = "Teacher"
)

func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User is persisted with its bcrypt hash. Redacted strips the hash before the
// record leaves the service layer.
type User struct {
	ID           string   `json:"id"`
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"passwordHash,omitempty"`
}

func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}
