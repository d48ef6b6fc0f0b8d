package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/clubadmin/internal/domain/agegroup"
	qb "github.com/pitchside/clubadmin/internal/platform/querybuilder"
)

type ageGroupTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	ClubID     string     `db:"club_public_id"`
	Name       string     `db:"name"`
	BirthYear  int        `db:"birth_year"`
	IsArchived bool       `db:"is_archived"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type ageGroupInsertModel struct {
	PublicID   string    `db:"public_id"`
	ClubID     string    `db:"club_public_id"`
	Name       string    `db:"name"`
	BirthYear  int       `db:"birth_year"`
	IsArchived bool      `db:"is_archived"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row ageGroupTableModel) toDomain() agegroup.AgeGroup {
	return agegroup.AgeGroup{
		ID:         row.PublicID,
		ClubID:     row.ClubID,
		Name:       row.Name,
		BirthYear:  row.BirthYear,
		IsArchived: row.IsArchived,
		UpdatedAt:  row.UpdatedAt,
	}
}

type AgeGroupRepository struct {
	db *sqlx.DB
}

func NewAgeGroupRepository(db *sqlx.DB) *AgeGroupRepository {
	return &AgeGroupRepository{db: db}
}

func (r *AgeGroupRepository) ListByClub(ctx context.Context, clubID string) ([]agegroup.AgeGroup, error) {
	query, args, err := qb.Select("*").From("age_groups").
		Where(
			qb.Eq("club_public_id", clubID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select age groups query: %w", err)
	}

	var rows []ageGroupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select age groups: %w", err)
	}

	out := make([]agegroup.AgeGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *AgeGroupRepository) GetByID(ctx context.Context, ageGroupID string) (agegroup.AgeGroup, bool, error) {
	query, args, err := qb.Select("*").From("age_groups").
		Where(
			qb.Eq("public_id", ageGroupID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return agegroup.AgeGroup{}, false, fmt.Errorf("build get age group by id query: %w", err)
	}

	var row ageGroupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return agegroup.AgeGroup{}, false, nil
		}
		return agegroup.AgeGroup{}, false, fmt.Errorf("get age group by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *AgeGroupRepository) Upsert(ctx context.Context, item agegroup.AgeGroup) error {
	insertModel := ageGroupInsertModel{
		PublicID:   item.ID,
		ClubID:     item.ClubID,
		Name:       item.Name,
		BirthYear:  item.BirthYear,
		IsArchived: item.IsArchived,
		UpdatedAt:  item.UpdatedAt,
	}

	builder, err := qb.InsertModel("age_groups", insertModel)
	if err != nil {
		return fmt.Errorf("build upsert age group query: %w", err)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    birth_year = EXCLUDED.birth_year,
    is_archived = EXCLUDED.is_archived,
    updated_at = EXCLUDED.updated_at`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert age group query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert age group: %w", err)
	}

	return nil
}
