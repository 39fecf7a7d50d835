package ports

import "context"

// AuthService runs the administrator login flow.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}
