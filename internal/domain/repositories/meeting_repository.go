package repositories

import (
	"context"

	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting operations.
type MeetingRepository interface {
	ListByDate(ctx context.Context, date string) ([]entities.Meeting, error)
	GetByID(ctx context.Context, id int64) (*entities.Meeting, error)
	Create(ctx context.Context, meeting *entities.Meeting) error
	Update(ctx context.Context, meeting *entities.Meeting) error
	Delete(ctx context.Context, id int64) error
}
