package repositories

import (
	"context"

	"github.com/simonindia/office-assistant/internal/domain/entities"
)

// ProtocolRepository defines the interface for the protocol singleton.
// First returns the first row found; a NOT_FOUND error means the row
// has not been created yet.
type ProtocolRepository interface {
	First(ctx context.Context) (*entities.Protocol, error)
	Create(ctx context.Context, protocol *entities.Protocol) error
	Update(ctx context.Context, protocol *entities.Protocol) error
}
