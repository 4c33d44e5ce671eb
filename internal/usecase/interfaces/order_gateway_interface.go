package interfaces

import (
	"context"

	"pharma_express/internal/domain/entities"
)

// IOrderGateway abstracts the remote order (pedido) endpoints.
//
// Absence conventions follow the remote contract:
//   - InProgress returns a zero-value Order with nil error when the backend
//     answers 404/204 or an empty body (no active order).
//   - History returns the raw list; callers decide what to scan for.
//
// Mutations return *pkg.BackendError for non-2xx replies and a wrapped
// transport error for network failures.
type IOrderGateway interface {
	History(ctx context.Context, userID int) ([]entities.Order, error)
	InProgress(ctx context.Context, userID int) (entities.Order, error)
	Create(ctx context.Context, userID int, medicineIDs []int, totalCost float64) (entities.Order, error)
	Update(ctx context.Context, orderID int, patch entities.OrderPatch) (entities.Order, error)
}
