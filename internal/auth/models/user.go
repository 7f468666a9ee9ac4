package models

// User is a registered account. PasswordHash is a bcrypt digest; the
// raw password is never stored.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
}
