package ports

import (
	"context"

	"fabrication/internal/core/domain/model/item"
	"fabrication/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for order items.
// Items are created together with their order and mutated only through
// validation; they are never deleted during the validation lifecycle.
type ItemRepository interface {
	// Add persists a new item to storage.
	Add(ctx context.Context, itm *item.OrderItem) error

	// Update persists changes to an existing item. The chosen fields are
	// written atomically or not at all.
	Update(ctx context.Context, itm *item.OrderItem) error

	// Get retrieves a single item by its unique identifier.
	// Returns errs.ObjectNotFoundError when no item with the id exists;
	// implementations never return (nil, nil).
	Get(ctx context.Context, id kernel.UUID) (*item.OrderItem, error)

	// GetAllByOrderID retrieves the full current item set of one order.
	// Reconciliation depends on this being a complete read: aggregate
	// decisions must never be based on a partial item set.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*item.OrderItem, error)
}
