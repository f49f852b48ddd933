package queries

import (
	"errors"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/pkg/guard"
)

var ErrGetUnfinishedOrdersQueryIsNotConstructed = errors.New(
	"GetUnfinishedOrdersQuery must be created via NewGetUnfinishedOrdersQuery constructor",
)

// GetUnfinishedOrdersQuery retrieves all orders still in progress.
// Returns every order whose status is not terminal, for shop-floor
// monitoring and validation work queues.
//
// Example:
//
//	query := NewGetUnfinishedOrdersQuery()
//	handler := NewGetUnfinishedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unfinished orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s: %s\n", o.Number, o.Status)
//	}
type GetUnfinishedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnfinishedOrdersQuery creates a query to retrieve unfinished orders.
// This is a parameterless query.
func NewGetUnfinishedOrdersQuery() GetUnfinishedOrdersQuery {
	return GetUnfinishedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnfinishedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnfinishedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfinishedOrdersQueryIsNotConstructed)
}

// GetUnfinishedOrdersQueryResponse is the read model of one unfinished order.
type GetUnfinishedOrdersQueryResponse struct {
	ID     kernel.UUID
	Number string
	Status order.Status
}
