package postgres

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pitchside/clubadmin/internal/domain/drilltemplate"
	qb "github.com/pitchside/clubadmin/internal/platform/querybuilder"
)

type drillTemplateTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	ClubID      string         `db:"club_public_id"`
	AgeGroupID  *string        `db:"age_group_public_id"`
	TeamID      *string        `db:"team_public_id"`
	Name        string         `db:"name"`
	Category    string         `db:"category"`
	Description string         `db:"description"`
	Attributes  pq.StringArray `db:"attributes"`
	Blocks      []byte         `db:"blocks"`
	IsArchived  bool           `db:"is_archived"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

type drillTemplateInsertModel struct {
	PublicID    string         `db:"public_id"`
	ClubID      string         `db:"club_public_id"`
	AgeGroupID  *string        `db:"age_group_public_id"`
	TeamID      *string        `db:"team_public_id"`
	Name        string         `db:"name"`
	Category    string         `db:"category"`
	Description string         `db:"description"`
	Attributes  pq.StringArray `db:"attributes"`
	Blocks      []byte         `db:"blocks"`
	IsArchived  bool           `db:"is_archived"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type templateBlockJSON struct {
	DrillID         string `json:"drill_id"`
	DurationMinutes int    `json:"duration_minutes"`
	Note            string `json:"note,omitempty"`
}

func (row drillTemplateTableModel) toDomain() (drilltemplate.Template, error) {
	var encoded []templateBlockJSON
	if len(row.Blocks) > 0 {
		if err := sonic.Unmarshal(row.Blocks, &encoded); err != nil {
			return drilltemplate.Template{}, fmt.Errorf("unmarshal template blocks: %w", err)
		}
	}
	blocks := make([]drilltemplate.Block, 0, len(encoded))
	for _, b := range encoded {
		blocks = append(blocks, drilltemplate.Block{
			DrillID:         b.DrillID,
			DurationMinutes: b.DurationMinutes,
			Note:            b.Note,
		})
	}

	return drilltemplate.Template{
		ID:          row.PublicID,
		Name:        row.Name,
		Category:    row.Category,
		Description: row.Description,
		Scope:       scopeFromColumns(row.ClubID, row.AgeGroupID, row.TeamID),
		Attributes:  []string(row.Attributes),
		Blocks:      blocks,
		IsArchived:  row.IsArchived,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

type DrillTemplateRepository struct {
	db *sqlx.DB
}

func NewDrillTemplateRepository(db *sqlx.DB) *DrillTemplateRepository {
	return &DrillTemplateRepository{db: db}
}

func (r *DrillTemplateRepository) ListByClub(ctx context.Context, clubID string) ([]drilltemplate.Template, error) {
	query, args, err := qb.Select("*").From("drill_templates").
		Where(
			qb.Eq("club_public_id", clubID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select drill templates query: %w", err)
	}

	var rows []drillTemplateTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select drill templates: %w", err)
	}

	out := make([]drilltemplate.Template, 0, len(rows))
	for _, row := range rows {
		t, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

func (r *DrillTemplateRepository) GetByID(ctx context.Context, templateID string) (drilltemplate.Template, bool, error) {
	query, args, err := qb.Select("*").From("drill_templates").
		Where(
			qb.Eq("public_id", templateID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return drilltemplate.Template{}, false, fmt.Errorf("build get drill template by id query: %w", err)
	}

	var row drillTemplateTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return drilltemplate.Template{}, false, nil
		}
		return drilltemplate.Template{}, false, fmt.Errorf("get drill template by id: %w", err)
	}

	t, err := row.toDomain()
	if err != nil {
		return drilltemplate.Template{}, false, err
	}

	return t, true, nil
}

func (r *DrillTemplateRepository) Upsert(ctx context.Context, item drilltemplate.Template) error {
	encoded := make([]templateBlockJSON, 0, len(item.Blocks))
	for _, b := range item.Blocks {
		encoded = append(encoded, templateBlockJSON{
			DrillID:         b.DrillID,
			DurationMinutes: b.DurationMinutes,
			Note:            b.Note,
		})
	}
	blocks, err := sonic.Marshal(encoded)
	if err != nil {
		return fmt.Errorf("marshal template blocks: %w", err)
	}

	clubID, ageGroupID, teamID := scopeToColumns(item.Scope)
	insertModel := drillTemplateInsertModel{
		PublicID:    item.ID,
		ClubID:      clubID,
		AgeGroupID:  ageGroupID,
		TeamID:      teamID,
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Attributes:  pq.StringArray(item.Attributes),
		Blocks:      blocks,
		IsArchived:  item.IsArchived,
		UpdatedAt:   item.UpdatedAt,
	}

	builder, err := qb.InsertModel("drill_templates", insertModel)
	if err != nil {
		return fmt.Errorf("build upsert drill template query: %w", err)
	}
	query, args, err := builder.Suffix(`ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    attributes = EXCLUDED.attributes,
    blocks = EXCLUDED.blocks,
    is_archived = EXCLUDED.is_archived,
    updated_at = EXCLUDED.updated_at`).ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert drill template query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert drill template: %w", err)
	}

	return nil
}
