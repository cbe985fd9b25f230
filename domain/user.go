package domain

import "time"

// User represents an account in the CRM. In the demo deployment there is a
// single seeded user that all data is scoped to.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy safe for external output: the password is stripped.
func (u *User) Sanitized() User {
	if u == nil {
		return User{}
	}
	out := *u
	out.Password = ""
	return out
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
