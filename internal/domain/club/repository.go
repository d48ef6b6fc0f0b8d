package club

import "context"

// Repository describes club persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	GetByID(ctx context.Context, clubID string) (Club, bool, error)
	Upsert(ctx context.Context, item Club) error
}
