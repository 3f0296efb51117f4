package domain

import "time"

// User models a registered account.
type User struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the subset of account data a session token asserts. A nil
// *Identity means the request is anonymous.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
