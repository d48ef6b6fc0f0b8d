package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/clubadmin/internal/domain/club"
	qb "github.com/pitchside/clubadmin/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.IsNull("deleted_at")).
		OrderBy("lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(
			qb.Eq("public_id", clubID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build get club by id query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("get club by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ClubRepository) Upsert(ctx context.Context, item club.Club) error {
	insertModel := clubInsertModel{
		PublicID:   item.ID,
		Name:       item.Name,
		IsArchived: item.IsArchived,
		UpdatedAt:  item.UpdatedAt,
	}
	if !item.FoundedAt.IsZero() {
		foundedAt := item.FoundedAt
		insertModel.FoundedAt = &foundedAt
	}

	builder, err := qb.InsertModel("clubs", insertModel)
	if err != nil {
		return fmt.Errorf("build upsert club query: %w", err)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    founded_at = EXCLUDED.founded_at,
    is_archived = EXCLUDED.is_archived,
    updated_at = EXCLUDED.updated_at`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert club: %w", err)
	}

	return nil
}
