package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
	"github.com/simonindia/office-assistant/internal/infrastructure/clients/sqlite"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

// LearningMemoryAdapter implements the corrections log in SQLite.
type LearningMemoryAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewLearningMemoryAdapter creates a new learning memory adapter.
func NewLearningMemoryAdapter(client *sqlite.Client) repositories.LearningMemoryRepository {
	return &LearningMemoryAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// List returns the newest memories first, optionally filtered by
// category. Ties on created_at break on id so insertion order wins.
func (a *LearningMemoryAdapter) List(ctx context.Context, category string, limit int) ([]entities.LearningMemory, error) {
	ds := a.db.From("learning_memories").
		Select("id", "context", "correction", "category", "created_at")
	if category != "" {
		ds = ds.Where(goqu.C("category").Eq(category))
	}
	query, args, err := ds.
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build memory list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list memories", err)
	}
	defer rows.Close()

	memories := []entities.LearningMemory{}
	for rows.Next() {
		var (
			m         entities.LearningMemory
			createdAt nullTime
		)
		if err := rows.Scan(&m.ID, &m.Context, &m.Correction, &m.Category, &createdAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan memory", err)
		}
		m.CreatedAt = createdAt.Time
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

// Create appends a memory row.
func (a *LearningMemoryAdapter) Create(ctx context.Context, memory *entities.LearningMemory) error {
	if memory.CreatedAt.IsZero() {
		memory.CreatedAt = time.Now().UTC()
	}

	query, args, err := a.db.Insert("learning_memories").Rows(goqu.Record{
		"context":    memory.Context,
		"correction": memory.Correction,
		"category":   memory.Category,
		"created_at": formatTime(memory.CreatedAt),
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build memory insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create memory", err)
	}

	memory.ID, err = result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read memory id", err)
	}
	return nil
}
