package repositories

import (
	"context"

	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// DailyBriefRepository defines the interface for daily brief storage.
// Upsert overwrites every section field of an existing row for the
// same date; uniqueness per date is application-level only.
type DailyBriefRepository interface {
	GetByDate(ctx context.Context, date string) (*entities.DailyBrief, error)
	Upsert(ctx context.Context, brief *entities.DailyBrief) error
}
