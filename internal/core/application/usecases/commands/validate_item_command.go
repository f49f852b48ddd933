package commands

import (
	"errors"

	"fabrication/internal/core/domain/model/item"
	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/guard"
)

var (
	ErrValidateItemCommandIsNotConstructed = errors.New(
		"ValidateItemCommand must be created via NewValidateItemCommand constructor",
	)
	ErrActorIsRequired   = errors.New("actor is required")
	ErrOutcomeIsInvalid  = errors.New("outcome must be approved or rejected")
	ErrQuantityIsInvalid = errors.New("quantity produced must not be negative")
)

// ValidateItemCommand represents one validation event: a decision on one
// gate of one item of one order. It is the inbound form of the engine's
// applyItemValidation operation.
//
// Example:
//
//	cmd, err := NewValidateItemCommand(
//	    orderID, itemID,
//	    item.GateProduction, item.GateStatusApproved,
//	    "inspector-7", nil, "",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid validation data: %w", err)
//	}
//
//	handler := NewValidateItemCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type ValidateItemCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	itemID           kernel.UUID
	gate             item.Gate
	outcome          item.GateStatus
	actor            string
	quantityProduced *int
	notes            string

	guard guard.ConstructorGuard
}

// NewValidateItemCommand creates a command carrying one validation decision.
// Validates identifiers, the gate, the outcome (approved or rejected only),
// the actor, and the optional produced quantity.
func NewValidateItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	gate item.Gate,
	outcome item.GateStatus,
	actor string,
	quantityProduced *int,
	notes string,
) (ValidateItemCommand, error) {
	cmd := ValidateItemCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setGate(gate),
		cmd.setOutcome(outcome),
		cmd.setActor(actor),
		cmd.setQuantityProduced(quantityProduced),
	); err != nil {
		return ValidateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrValidateItemCommandIsNotConstructed if validation fails.
func (c ValidateItemCommand) Validate() error {
	return c.guard.Validate(ErrValidateItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the item.
func (c ValidateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item being validated.
func (c ValidateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Gate returns the validation checkpoint being decided.
func (c ValidateItemCommand) Gate() item.Gate {
	return c.gate
}

// Outcome returns the decision: approved or rejected.
func (c ValidateItemCommand) Outcome() item.GateStatus {
	return c.outcome
}

// Actor returns the identity of the validator.
func (c ValidateItemCommand) Actor() string {
	return c.actor
}

// QuantityProduced returns the optional produced quantity, nil when not supplied.
func (c ValidateItemCommand) QuantityProduced() *int {
	if c.quantityProduced == nil {
		return nil
	}
	q := *c.quantityProduced
	return &q
}

// Notes returns the optional free-text remarks from the validator.
func (c ValidateItemCommand) Notes() string {
	return c.notes
}

func (c *ValidateItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ValidateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *ValidateItemCommand) setGate(gate item.Gate) error {
	if err := gate.Validate(); err != nil {
		return err
	}
	c.gate = gate
	return nil
}

func (c *ValidateItemCommand) setOutcome(outcome item.GateStatus) error {
	if !outcome.IsDecision() {
		return ErrOutcomeIsInvalid
	}
	c.outcome = outcome
	return nil
}

func (c *ValidateItemCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}

func (c *ValidateItemCommand) setQuantityProduced(quantity *int) error {
	if quantity == nil {
		c.quantityProduced = nil
		return nil
	}
	if *quantity < 0 {
		return ErrQuantityIsInvalid
	}
	q := *quantity
	c.quantityProduced = &q
	return nil
}
