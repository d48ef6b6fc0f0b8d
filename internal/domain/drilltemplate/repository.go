package drilltemplate

import "context"

// Repository describes drill template persistence needs from use cases.
type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]Template, error)
	GetByID(ctx context.Context, templateID string) (Template, bool, error)
	Upsert(ctx context.Context, item Template) error
}
