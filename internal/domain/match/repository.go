package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Upsert(ctx context.Context, item Match) error
}
