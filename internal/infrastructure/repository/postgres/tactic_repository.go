package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pitchside/clubadmin/internal/domain/tactic"
	qb "github.com/pitchside/clubadmin/internal/platform/querybuilder"
)

type tacticTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	ClubID            string         `db:"club_public_id"`
	AgeGroupID        *string        `db:"age_group_public_id"`
	TeamID            *string        `db:"team_public_id"`
	Name              string         `db:"name"`
	Category          string         `db:"category"`
	Description       string         `db:"description"`
	SquadSize         int            `db:"squad_size"`
	ParentFormationID string         `db:"parent_formation_public_id"`
	Overrides         []byte         `db:"overrides"`
	Attributes        pq.StringArray `db:"attributes"`
	IsArchived        bool           `db:"is_archived"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}

type tacticInsertModel struct {
	PublicID          string         `db:"public_id"`
	ClubID            string         `db:"club_public_id"`
	AgeGroupID        *string        `db:"age_group_public_id"`
	TeamID            *string        `db:"team_public_id"`
	Name              string         `db:"name"`
	Category          string         `db:"category"`
	Description       string         `db:"description"`
	SquadSize         int            `db:"squad_size"`
	ParentFormationID string         `db:"parent_formation_public_id"`
	Overrides         []byte         `db:"overrides"`
	Attributes        pq.StringArray `db:"attributes"`
	IsArchived        bool           `db:"is_archived"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type tacticOverrideJSON struct {
	Role *string  `json:"role,omitempty"`
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
}

// Overrides are stored as a JSON object keyed by slot index, the sparse shape
// the domain model uses.
func marshalOverrides(overrides map[int]tactic.Override) ([]byte, error) {
	if len(overrides) == 0 {
		return []byte("{}"), nil
	}
	encoded := make(map[string]tacticOverrideJSON, len(overrides))
	for idx, o := range overrides {
		encoded[strconv.Itoa(idx)] = tacticOverrideJSON{Role: o.Role, X: o.X, Y: o.Y}
	}
	return sonic.Marshal(encoded)
}

func unmarshalOverrides(raw []byte) (map[int]tactic.Override, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var encoded map[string]tacticOverrideJSON
	if err := sonic.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("unmarshal tactic overrides: %w", err)
	}
	if len(encoded) == 0 {
		return nil, nil
	}

	overrides := make(map[int]tactic.Override, len(encoded))
	for key, o := range encoded {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid override slot index %q", key)
		}
		overrides[idx] = tactic.Override{Role: o.Role, X: o.X, Y: o.Y}
	}

	return overrides, nil
}

func (row tacticTableModel) toDomain() (tactic.Tactic, error) {
	overrides, err := unmarshalOverrides(row.Overrides)
	if err != nil {
		return tactic.Tactic{}, err
	}

	return tactic.Tactic{
		ID:                row.PublicID,
		Name:              row.Name,
		Category:          row.Category,
		Description:       row.Description,
		Scope:             scopeFromColumns(row.ClubID, row.AgeGroupID, row.TeamID),
		SquadSize:         row.SquadSize,
		ParentFormationID: row.ParentFormationID,
		Overrides:         overrides,
		Attributes:        []string(row.Attributes),
		IsArchived:        row.IsArchived,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

type TacticRepository struct {
	db *sqlx.DB
}

func NewTacticRepository(db *sqlx.DB) *TacticRepository {
	return &TacticRepository{db: db}
}

func (r *TacticRepository) ListByClub(ctx context.Context, clubID string) ([]tactic.Tactic, error) {
	query, args, err := qb.Select("*").From("tactics").
		Where(
			qb.Eq("club_public_id", clubID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tactics query: %w", err)
	}

	var rows []tacticTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tactics: %w", err)
	}

	out := make([]tactic.Tactic, 0, len(rows))
	for _, row := range rows {
		t, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

func (r *TacticRepository) GetByID(ctx context.Context, tacticID string) (tactic.Tactic, bool, error) {
	query, args, err := qb.Select("*").From("tactics").
		Where(
			qb.Eq("public_id", tacticID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return tactic.Tactic{}, false, fmt.Errorf("build get tactic by id query: %w", err)
	}

	var row tacticTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tactic.Tactic{}, false, nil
		}
		return tactic.Tactic{}, false, fmt.Errorf("get tactic by id: %w", err)
	}

	t, err := row.toDomain()
	if err != nil {
		return tactic.Tactic{}, false, err
	}

	return t, true, nil
}

func (r *TacticRepository) Upsert(ctx context.Context, item tactic.Tactic) error {
	overrides, err := marshalOverrides(item.Overrides)
	if err != nil {
		return fmt.Errorf("marshal tactic overrides: %w", err)
	}

	clubID, ageGroupID, teamID := scopeToColumns(item.Scope)
	insertModel := tacticInsertModel{
		PublicID:          item.ID,
		ClubID:            clubID,
		AgeGroupID:        ageGroupID,
		TeamID:            teamID,
		Name:              item.Name,
		Category:          item.Category,
		Description:       item.Description,
		SquadSize:         item.SquadSize,
		ParentFormationID: item.ParentFormationID,
		Overrides:         overrides,
		Attributes:        pq.StringArray(item.Attributes),
		IsArchived:        item.IsArchived,
		UpdatedAt:         item.UpdatedAt,
	}

	builder, err := qb.InsertModel("tactics", insertModel)
	if err != nil {
		return fmt.Errorf("build upsert tactic query: %w", err)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    squad_size = EXCLUDED.squad_size,
    parent_formation_public_id = EXCLUDED.parent_formation_public_id,
    overrides = EXCLUDED.overrides,
    attributes = EXCLUDED.attributes,
    is_archived = EXCLUDED.is_archived,
    updated_at = EXCLUDED.updated_at`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert tactic query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert tactic: %w", err)
	}

	return nil
}
