package drill

import "context"

// Repository describes drill persistence needs from use cases. ListByClub
// returns every drill under the club regardless of definition level; the
// scope resolver narrows visibility per query.
type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]Drill, error)
	GetByID(ctx context.Context, drillID string) (Drill, bool, error)
	Upsert(ctx context.Context, item Drill) error
}
