package queries

import (
	"context"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnfinishedOrdersQueryHandler retrieves in-progress orders from the
// database. Reads bypass the aggregate and use direct SQL for performance,
// per the CQRS split.
//
// Example:
//
//	handler := NewGetUnfinishedOrdersQueryHandler(db)
//	query := NewGetUnfinishedOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unfinished orders: %v", err)
//	    return err
//	}
type GetUnfinishedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfinishedOrdersQueryHandler creates a handler for unfinished order queries.
// Requires a GORM database connection for query execution.
func NewGetUnfinishedOrdersQueryHandler(db *gorm.DB) GetUnfinishedOrdersQueryHandler {
	return GetUnfinishedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unfinished orders.
// Excludes done and cancelled orders. Results are sorted by order number
// for consistent output.
func (h GetUnfinishedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnfinishedOrdersQuery,
) ([]GetUnfinishedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnfinishedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY number
	`, order.Done, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnfinishedOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&orderResp.Number,
			&orderResp.Status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
