package repositories

import (
	"context"

	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// TimeSplitRepository defines the interface for the time-split singleton.
type TimeSplitRepository interface {
	First(ctx context.Context) (*entities.TimeSplit, error)
	Create(ctx context.Context, split *entities.TimeSplit) error
	Update(ctx context.Context, split *entities.TimeSplit) error
}
