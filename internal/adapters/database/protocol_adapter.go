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

// ProtocolAdapter implements the protocol singleton in SQLite. The
// singleton holds by first-row convention only; concurrent creation
// can duplicate it.
type ProtocolAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewProtocolAdapter creates a new protocol adapter.
func NewProtocolAdapter(client *sqlite.Client) repositories.ProtocolRepository {
	return &ProtocolAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// First returns the first protocol row found.
func (a *ProtocolAdapter) First(ctx context.Context) (*entities.Protocol, error) {
	query, args, err := a.db.From("protocol").
		Select("id", "gov", "intl", "notes", "updated_at").
		Order(goqu.C("id").Asc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build protocol query", err)
	}

	var (
		p         entities.Protocol
		updatedAt nullTime
	)
	row := a.client.DB().QueryRowContext(ctx, query, args...)
	err = row.Scan(&p.ID, &p.Gov, &p.Intl, &p.Notes, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("protocol not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get protocol", err)
	}
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}

// Create inserts the protocol row.
func (a *ProtocolAdapter) Create(ctx context.Context, protocol *entities.Protocol) error {
	protocol.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Insert("protocol").Rows(goqu.Record{
		"gov":        protocol.Gov,
		"intl":       protocol.Intl,
		"notes":      protocol.Notes,
		"updated_at": formatTime(protocol.UpdatedAt),
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build protocol insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create protocol", err)
	}

	protocol.ID, err = result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read protocol id", err)
	}
	return nil
}

// Update overwrites the protocol row's fields.
func (a *ProtocolAdapter) Update(ctx context.Context, protocol *entities.Protocol) error {
	protocol.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Update("protocol").Set(goqu.Record{
		"gov":        protocol.Gov,
		"intl":       protocol.Intl,
		"notes":      protocol.Notes,
		"updated_at": formatTime(protocol.UpdatedAt),
	}).Where(goqu.C("id").Eq(protocol.ID)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build protocol update query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to update protocol", err)
	}
	return nil
}
