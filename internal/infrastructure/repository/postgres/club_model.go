package postgres

import (
	"time"

	"github.com/pitchside/clubadmin/internal/domain/club"
)

type clubTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	Name       string     `db:"name"`
	FoundedAt  *time.Time `db:"founded_at"`
	IsArchived bool       `db:"is_archived"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type clubInsertModel struct {
	PublicID   string     `db:"public_id"`
	Name       string     `db:"name"`
	FoundedAt  *time.Time `db:"founded_at"`
	IsArchived bool       `db:"is_archived"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (row clubTableModel) toDomain() club.Club {
	c := club.Club{
		ID:         row.PublicID,
		Name:       row.Name,
		IsArchived: row.IsArchived,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.FoundedAt != nil {
		c.FoundedAt = *row.FoundedAt
	}
	return c
}
