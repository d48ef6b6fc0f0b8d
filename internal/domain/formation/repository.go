package formation

import "context"

// Repository describes formation reference data reads. Formations are seeded,
// never authored through the API.
type Repository interface {
	List(ctx context.Context) ([]Formation, error)
	ListBySquadSize(ctx context.Context, squadSize int) ([]Formation, error)
	GetByID(ctx context.Context, formationID string) (Formation, bool, error)
}
