package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pitchside/clubadmin/internal/domain/team"
	qb "github.com/pitchside/clubadmin/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	ClubID     string     `db:"club_public_id"`
	AgeGroupID string     `db:"age_group_public_id"`
	Name       string     `db:"name"`
	ShortName  string     `db:"short_name"`
	IsArchived bool       `db:"is_archived"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID   string    `db:"public_id"`
	ClubID     string    `db:"club_public_id"`
	AgeGroupID string    `db:"age_group_public_id"`
	Name       string    `db:"name"`
	ShortName  string    `db:"short_name"`
	IsArchived bool      `db:"is_archived"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:         row.PublicID,
		ClubID:     row.ClubID,
		AgeGroupID: row.AgeGroupID,
		Name:       row.Name,
		Short:      row.ShortName,
		IsArchived: row.IsArchived,
		UpdatedAt:  row.UpdatedAt,
	}
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByAgeGroup(ctx context.Context, ageGroupID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("age_group_public_id", ageGroupID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	insertModel := teamInsertModel{
		PublicID:   item.ID,
		ClubID:     item.ClubID,
		AgeGroupID: item.AgeGroupID,
		Name:       item.Name,
		ShortName:  item.Short,
		IsArchived: item.IsArchived,
		UpdatedAt:  item.UpdatedAt,
	}

	builder, err := qb.InsertModel("teams", insertModel)
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    short_name = EXCLUDED.short_name,
    is_archived = EXCLUDED.is_archived,
    updated_at = EXCLUDED.updated_at`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team: %w", err)
	}

	return nil
}
