package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
	"github.com/simonindia/office-assistant/internal/infrastructure/clients/sqlite"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

// TimeSplitAdapter implements the time-split singleton in SQLite.
type TimeSplitAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewTimeSplitAdapter creates a new time-split adapter.
func NewTimeSplitAdapter(client *sqlite.Client) repositories.TimeSplitRepository {
	return &TimeSplitAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// First returns the first time-split row found.
func (a *TimeSplitAdapter) First(ctx context.Context) (*entities.TimeSplit, error) {
	query, args, err := a.db.From("time_splits").
		Select("id", "bd", "internal", "strategy", "admin", "updated_at").
		Order(goqu.C("id").Asc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build time-split query", err)
	}

	var (
		s         entities.TimeSplit
		updatedAt nullTime
	)
	row := a.client.DB().QueryRowContext(ctx, query, args...)
	err = row.Scan(&s.ID, &s.BD, &s.Internal, &s.Strategy, &s.Admin, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("time split not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get time split", err)
	}
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

// Create inserts the time-split row.
func (a *TimeSplitAdapter) Create(ctx context.Context, split *entities.TimeSplit) error {
	split.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Insert("time_splits").Rows(goqu.Record{
		"bd":         split.BD,
		"internal":   split.Internal,
		"strategy":   split.Strategy,
		"admin":      split.Admin,
		"updated_at": formatTime(split.UpdatedAt),
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build time-split insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create time split", err)
	}

	split.ID, err = result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read time-split id", err)
	}
	return nil
}

// Update overwrites the time-split row's fields.
func (a *TimeSplitAdapter) Update(ctx context.Context, split *entities.TimeSplit) error {
	split.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Update("time_splits").Set(goqu.Record{
		"bd":         split.BD,
		"internal":   split.Internal,
		"strategy":   split.Strategy,
		"admin":      split.Admin,
		"updated_at": formatTime(split.UpdatedAt),
	}).Where(goqu.C("id").Eq(split.ID)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build time-split update query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to update time split", err)
	}
	return nil
}
