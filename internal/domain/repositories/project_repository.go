package repositories

import (
	"context"

	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// ProjectRepository defines the interface for project operations.
type ProjectRepository interface {
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id int64) (*entities.Project, error)
	Create(ctx context.Context, project *entities.Project) error
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, id int64) error
}
