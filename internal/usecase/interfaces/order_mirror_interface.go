package interfaces

import (
	"context"
	"webatelier/internal/domain/entities"
)

// IOrderMirror abstracts the secondary, best-effort persistence target
// written after the primary backend accepts an order. Writes are keyed
// by the primary-assigned order id; failures are logged by the caller
// and never fail the submission.
type IOrderMirror interface {
	Write(ctx context.Context, o entities.Order) error
}
