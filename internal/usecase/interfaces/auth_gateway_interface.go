package interfaces

import (
	"context"

	"pharma_express/internal/domain/entities"
)

// IAuthGateway abstracts the remote account endpoints.
//
// The remote system has no "login by email" call: the stable numeric user id
// is resolved by a separate email lookup, then credentials are exchanged for
// an opaque bearer token.
type IAuthGateway interface {
	Register(ctx context.Context, reg entities.Registration) error
	Login(ctx context.Context, email, password string) (string, error)
	UserIDByEmail(ctx context.Context, email string) (int, error)
}
