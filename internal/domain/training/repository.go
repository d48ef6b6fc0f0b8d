package training

import "context"

// Repository describes training session persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Session, error)
	GetByID(ctx context.Context, sessionID string) (Session, bool, error)
	Upsert(ctx context.Context, item Session) error
}
