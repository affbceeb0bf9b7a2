package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User mirrors the account record served by the user backend. The password
// travels in plaintext because that is what the backend stores; this layer
// does not pretend otherwise.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Gender   string
	Role     Role
}
