package ports

import (
	"context"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by their
// aggregate status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order with the id exists;
	// implementations never return (nil, nil).
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnfinished retrieves every order whose status is not terminal
	// (neither done nor cancelled). Used by the bulk repair scan to revisit
	// orders whose aggregate status may have drifted from item truth.
	GetAllUnfinished(ctx context.Context) ([]*order.Order, error)
}
