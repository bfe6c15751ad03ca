// internal/membership/service.go
package membership

import "context"

// Service defines the interface for the membership service.
type Service interface {
	Register(ctx context.Context, user User, password string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	Authenticate(ctx context.Context, id int, password string) (string, error)
	VerifyToken(token string) (*Claims, error)
}
