package ports

import "context"

// TokenValidator confirms an admin bearer token against the upstream admin
// API. A nil return means the session is still valid. Any error — a rejected
// token, a network fault, or a timeout — must be treated as an invalid
// session (fail closed).
type TokenValidator interface {
	Validate(ctx context.Context, token string) error
}
