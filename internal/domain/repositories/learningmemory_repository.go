package repositories

import (
	"context"

	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// LearningMemoryRepository defines the interface for the append-only
// corrections log. List returns newest entries first; an empty
// category matches all categories.
type LearningMemoryRepository interface {
	List(ctx context.Context, category string, limit int) ([]entities.LearningMemory, error)
	Create(ctx context.Context, memory *entities.LearningMemory) error
}
