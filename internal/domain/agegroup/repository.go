package agegroup

import "context"

// Repository describes age group persistence needs from use cases.
type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]AgeGroup, error)
	GetByID(ctx context.Context, ageGroupID string) (AgeGroup, bool, error)
	Upsert(ctx context.Context, item AgeGroup) error
}
