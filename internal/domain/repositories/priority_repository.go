package repositories

import (
	"context"

	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// PriorityRepository defines the interface for priority operations.
type PriorityRepository interface {
	List(ctx context.Context) ([]entities.Priority, error)
	Create(ctx context.Context, priority *entities.Priority) error
	Delete(ctx context.Context, id int64) error
}
