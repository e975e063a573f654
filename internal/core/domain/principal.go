package domain

import "time"

// Kind distinguishes the two independent principal kinds a session can hold.
// A browser session may carry at most one authenticated principal of each
// kind concurrently; they are never stacked.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// Principal is an authenticated identity as mirrored into the credential
// store. It carries identity and authorization only — no business data.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Account is a stored login account: a principal plus its credentials and
// audit timestamps. PasswordHash is never exposed in API responses.
type Account struct {
	Principal    `bson:",inline"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
