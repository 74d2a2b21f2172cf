package interfaces

import (
	"context"

	"tukangku/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.
// The catalog is read-only here; listing and moderation live elsewhere.

type IServiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListApproved(ctx context.Context) ([]entities.Service, error)
}
