package queries

import (
	"context"

	"fabrication/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler retrieves the items of one order from the
// database, including their gate statuses and produced quantities.
type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderItemsQueryHandler creates a handler for order item queries.
// Requires a GORM database connection for query execution.
func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve the items of the requested order.
// Returns an empty slice when the order has no items or does not exist.
// Results are sorted by item ID for consistent output.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetOrderItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			quantity_ordered,
			production_status,
			quality_status,
			quantity_produced,
			notes
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetOrderItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&itemResp.QuantityOrdered,
			&itemResp.ProductionStatus,
			&itemResp.QualityStatus,
			&itemResp.QuantityProduced,
			&itemResp.Notes,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID

		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
