package database

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
	"github.com/simonindia/office-assistant/internal/infrastructure/clients/sqlite"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

// PriorityAdapter implements priority persistence in SQLite.
type PriorityAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewPriorityAdapter creates a new priority adapter.
func NewPriorityAdapter(client *sqlite.Client) repositories.PriorityRepository {
	return &PriorityAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// List returns all priorities in insertion order.
func (a *PriorityAdapter) List(ctx context.Context) ([]entities.Priority, error) {
	query, args, err := a.db.From("priorities").
		Select("id", "text", "created_at").
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build priority list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list priorities", err)
	}
	defer rows.Close()

	priorities := []entities.Priority{}
	for rows.Next() {
		var (
			p         entities.Priority
			createdAt nullTime
		)
		if err := rows.Scan(&p.ID, &p.Text, &createdAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan priority", err)
		}
		p.CreatedAt = createdAt.Time
		priorities = append(priorities, p)
	}
	return priorities, rows.Err()
}

// Create inserts a priority row.
func (a *PriorityAdapter) Create(ctx context.Context, priority *entities.Priority) error {
	if priority.CreatedAt.IsZero() {
		priority.CreatedAt = time.Now().UTC()
	}

	query, args, err := a.db.Insert("priorities").Rows(goqu.Record{
		"text":       priority.Text,
		"created_at": formatTime(priority.CreatedAt),
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build priority insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create priority", err)
	}

	priority.ID, err = result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read priority id", err)
	}
	return nil
}

// Delete removes a priority by id.
func (a *PriorityAdapter) Delete(ctx context.Context, id int64) error {
	query, args, err := a.db.Delete("priorities").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build priority delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete priority", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read delete result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("priority with id %d not found", id))
	}
	return nil
}
