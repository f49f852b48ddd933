package commands

import (
	"errors"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNumberIsRequired    = errors.New("order number is required")
	ErrItemsAreRequired    = errors.New("at least one item is required")
	ErrItemQuantityInvalid = errors.New("item quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new manufacturing
// order together with its line items. Items are created with the order and
// start with both validation gates pending.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "MO-2024-0117", []int{40, 12})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	number     string
	quantities []int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new manufacturing order.
// Validates that the order ID is valid, the number is not empty, and every
// item quantity is positive. Returns an error if any validation fails.
func NewCreateOrderCommand(orderID kernel.UUID, number string, quantities []int) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setNumber(number),
		orderCommand.setQuantities(quantities),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the human-readable order number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// Quantities returns the ordered quantity of each line item.
func (c CreateOrderCommand) Quantities() []int {
	out := make([]int, len(c.quantities))
	copy(out, c.quantities)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setQuantities(quantities []int) error {
	if len(quantities) == 0 {
		return ErrItemsAreRequired
	}
	for _, q := range quantities {
		if q <= 0 {
			return ErrItemQuantityInvalid
		}
	}

	c.quantities = make([]int, len(quantities))
	copy(c.quantities, quantities)
	return nil
}
