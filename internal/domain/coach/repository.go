package coach

import "context"

// Repository describes coach persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Coach, error)
	GetByID(ctx context.Context, coachID string) (Coach, bool, error)
	Upsert(ctx context.Context, item Coach) error
}
