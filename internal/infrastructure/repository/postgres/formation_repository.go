package postgres

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/pitchside/clubadmin/internal/domain/formation"
	qb "github.com/pitchside/clubadmin/internal/platform/querybuilder"
)

type formationTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	SquadSize int        `db:"squad_size"`
	Slots     []byte     `db:"slots"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type formationSlotJSON struct {
	SlotIndex int     `json:"slot_index"`
	Role      string  `json:"role"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

func (row formationTableModel) toDomain() (formation.Formation, error) {
	var encoded []formationSlotJSON
	if len(row.Slots) > 0 {
		if err := sonic.Unmarshal(row.Slots, &encoded); err != nil {
			return formation.Formation{}, fmt.Errorf("unmarshal formation slots: %w", err)
		}
	}
	slots := make([]formation.Slot, 0, len(encoded))
	for _, s := range encoded {
		slots = append(slots, formation.Slot{
			SlotIndex: s.SlotIndex,
			Role:      s.Role,
			X:         s.X,
			Y:         s.Y,
		})
	}

	return formation.Formation{
		ID:        row.PublicID,
		Name:      row.Name,
		SquadSize: row.SquadSize,
		Slots:     slots,
	}, nil
}

// FormationRepository reads the formation catalog. Formations are reference
// data seeded by migrations, so there is no write path.
type FormationRepository struct {
	db *sqlx.DB
}

func NewFormationRepository(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	query, args, err := qb.Select("*").From("formations").
		Where(qb.IsNull("deleted_at")).
		OrderBy("squad_size", "lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select formations query: %w", err)
	}

	return r.selectFormations(ctx, query, args)
}

func (r *FormationRepository) ListBySquadSize(ctx context.Context, squadSize int) ([]formation.Formation, error) {
	query, args, err := qb.Select("*").From("formations").
		Where(
			qb.Eq("squad_size", squadSize),
			qb.IsNull("deleted_at"),
		).
		OrderBy("lower(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select formations by squad size query: %w", err)
	}

	return r.selectFormations(ctx, query, args)
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID string) (formation.Formation, bool, error) {
	query, args, err := qb.Select("*").From("formations").
		Where(
			qb.Eq("public_id", formationID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return formation.Formation{}, false, fmt.Errorf("build get formation by id query: %w", err)
	}

	var row formationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Formation{}, false, nil
		}
		return formation.Formation{}, false, fmt.Errorf("get formation by id: %w", err)
	}

	f, err := row.toDomain()
	if err != nil {
		return formation.Formation{}, false, err
	}

	return f, true, nil
}

func (r *FormationRepository) selectFormations(ctx context.Context, query string, args []any) ([]formation.Formation, error) {
	var rows []formationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select formations: %w", err)
	}

	out := make([]formation.Formation, 0, len(rows))
	for _, row := range rows {
		f, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}
