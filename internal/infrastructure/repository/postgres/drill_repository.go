package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pitchside/clubadmin/internal/domain/drill"
	qb "github.com/pitchside/clubadmin/internal/platform/querybuilder"
)

type drillTableModel struct {
	ID              int64          `db:"id"`
	PublicID        string         `db:"public_id"`
	ClubID          string         `db:"club_public_id"`
	AgeGroupID      *string        `db:"age_group_public_id"`
	TeamID          *string        `db:"team_public_id"`
	Name            string         `db:"name"`
	Category        string         `db:"category"`
	Description     string         `db:"description"`
	Attributes      pq.StringArray `db:"attributes"`
	DurationMinutes int            `db:"duration_minutes"`
	IsArchived      bool           `db:"is_archived"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       *time.Time     `db:"deleted_at"`
}

type drillInsertModel struct {
	PublicID        string         `db:"public_id"`
	ClubID          string         `db:"club_public_id"`
	AgeGroupID      *string        `db:"age_group_public_id"`
	TeamID          *string        `db:"team_public_id"`
	Name            string         `db:"name"`
	Category        string         `db:"category"`
	Description     string         `db:"description"`
	Attributes      pq.StringArray `db:"attributes"`
	DurationMinutes int            `db:"duration_minutes"`
	IsArchived      bool           `db:"is_archived"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (row drillTableModel) toDomain() drill.Drill {
	return drill.Drill{
		ID:              row.PublicID,
		Name:            row.Name,
		Category:        row.Category,
		Description:     row.Description,
		Scope:           scopeFromColumns(row.ClubID, row.AgeGroupID, row.TeamID),
		Attributes:      []string(row.Attributes),
		DurationMinutes: row.DurationMinutes,
		IsArchived:      row.IsArchived,
		UpdatedAt:       row.UpdatedAt,
	}
}

type DrillRepository struct {
	db *sqlx.DB
}

func NewDrillRepository(db *sqlx.DB) *DrillRepository {
	return &DrillRepository{db: db}
}

func (r *DrillRepository) ListByClub(ctx context.Context, clubID string) ([]drill.Drill, error) {
	query, args, err := qb.Select("*").From("drills").
		Where(
			qb.Eq("club_public_id", clubID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select drills query: %w", err)
	}

	var rows []drillTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select drills: %w", err)
	}

	out := make([]drill.Drill, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *DrillRepository) GetByID(ctx context.Context, drillID string) (drill.Drill, bool, error) {
	query, args, err := qb.Select("*").From("drills").
		Where(
			qb.Eq("public_id", drillID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return drill.Drill{}, false, fmt.Errorf("build get drill by id query: %w", err)
	}

	var row drillTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return drill.Drill{}, false, nil
		}
		return drill.Drill{}, false, fmt.Errorf("get drill by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *DrillRepository) Upsert(ctx context.Context, item drill.Drill) error {
	clubID, ageGroupID, teamID := scopeToColumns(item.Scope)
	insertModel := drillInsertModel{
		PublicID:        item.ID,
		ClubID:          clubID,
		AgeGroupID:      ageGroupID,
		TeamID:          teamID,
		Name:            item.Name,
		Category:        item.Category,
		Description:     item.Description,
		Attributes:      pq.StringArray(item.Attributes),
		DurationMinutes: item.DurationMinutes,
		IsArchived:      item.IsArchived,
		UpdatedAt:       item.UpdatedAt,
	}

	builder, err := qb.InsertModel("drills", insertModel)
	if err != nil {
		return fmt.Errorf("build upsert drill query: %w", err)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    attributes = EXCLUDED.attributes,
    duration_minutes = EXCLUDED.duration_minutes,
    is_archived = EXCLUDED.is_archived,
    updated_at = EXCLUDED.updated_at`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert drill query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert drill: %w", err)
	}

	return nil
}
