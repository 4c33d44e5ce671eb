package interfaces

import (
	"context"

	"pharma_express/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for Session.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
