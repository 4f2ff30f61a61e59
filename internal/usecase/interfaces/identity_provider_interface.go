package interfaces

import (
	"context"
	"webatelier/internal/domain/entities"
)

// IIdentityProvider abstracts the external session/auth collaborator.
// The core only reads identities, to prefill a fresh draft; an unknown
// or expired token is not an error the wizard surfaces.
type IIdentityProvider interface {
	Resolve(ctx context.Context, token string) (entities.Identity, error)
}
