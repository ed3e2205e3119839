package domain

import "time"

// User represents a registered account. The username is stored
// lowercase and is the only identity the service knows about.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
