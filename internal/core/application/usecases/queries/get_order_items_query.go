package queries

import (
	"errors"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery retrieves the line items of one order together with
// their validation state.
//
// Example:
//
//	query, err := NewGetOrderItemsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderItemsQueryHandler(db)
//	items, err := handler.Handle(ctx, query)
type GetOrderItemsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderItemsQuery creates a query for the items of the given order.
func NewGetOrderItemsQuery(orderID kernel.UUID) (GetOrderItemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderItemsQuery{}, err
	}

	return GetOrderItemsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderItemsQueryIsNotConstructed if validation fails.
func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose items are requested.
func (q GetOrderItemsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemsQueryResponse is the read model of one order item.
// Validation fields are pointers: nil means the stored record carries no
// value for the field, which callers must treat the same as a missing
// column.
type GetOrderItemsQueryResponse struct {
	ID               kernel.UUID
	QuantityOrdered  int
	ProductionStatus *string
	QualityStatus    *string
	QuantityProduced *int
	Notes            *string
}
