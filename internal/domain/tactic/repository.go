package tactic

import "context"

// Repository describes tactic persistence needs from use cases.
type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]Tactic, error)
	GetByID(ctx context.Context, tacticID string) (Tactic, bool, error)
	Upsert(ctx context.Context, item Tactic) error
}
