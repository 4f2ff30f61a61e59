package interfaces

import (
	"context"
	"webatelier/internal/domain/entities"
)

// IUserRepository abstracts persistence for customers seen at
// submission time. RecordOrder upserts by email, bumping the order
// count and total spent.

type IUserRepository interface {
	RecordOrder(ctx context.Context, identity entities.Identity, profession string, orderTotal float64) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}
