// internal/catalog/service.go
package catalog

import "context"

// Service defines the interface for the catalog service.
type Service interface {
	Register(ctx context.Context, title, author, isbn string) (*Book, error)
	FindAvailable(ctx context.Context, isbn string) (*Book, error)
	Get(ctx context.Context, isbn string) (*Book, error)
	SetAvailability(ctx context.Context, isbn string, available bool) error
	ListAll(ctx context.Context) ([]*Book, error)
}
