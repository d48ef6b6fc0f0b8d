package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByAgeGroup(ctx context.Context, ageGroupID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Upsert(ctx context.Context, item Team) error
}
