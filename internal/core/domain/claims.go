package domain

import "time"

// Claims is the identity payload carried by a session token.
type Claims struct {
	Email     string
	Role      Role
	Category  string
	Scope     Scope
	ExpiresAt time.Time
}
