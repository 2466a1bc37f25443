package models

import "time"

// User is one registered principal. Email is unique and immutable after
// creation. Password holds the bcrypt hash of the current credential.
// ResetToken is empty unless a password reset is outstanding for this user.
type User struct {
	ID         string
	Email      string
	Password   string
	ResetToken string
	CreatedAt  time.Time
}
