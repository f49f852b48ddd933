package item

import (
	"errors"
	"fmt"
	"time"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/errs"
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem was not
	// created through NewOrderItem or RestoreOrderItem.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

	// ErrAttributeNotSupported is returned by mutators when the item's
	// schema does not expose the attribute being written. Callers are
	// expected to probe capabilities first and fall back gracefully.
	ErrAttributeNotSupported = errors.New("attribute is not supported by this item")

	// ErrQuantityOrderedIsInvalid is returned when creating an item with a
	// non-positive ordered quantity.
	ErrQuantityOrderedIsInvalid = errs.NewValueIsInvalidError("quantity ordered must be greater than 0")
)

// OrderItem represents one line item of a manufacturing order. Items are
// created together with their order and are mutated only through validation;
// they are never deleted during the validation lifecycle.
//
// The item's optional validation attributes are capability-dependent: not
// every deployment exposes structured gate statuses, audit fields, or notes.
// The raw attribute set is private; consumers read through typed accessors
// and probe support through Capabilities().
type OrderItem struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// orderID identifies the owning order
	orderID kernel.UUID

	// quantityOrdered is the number of units the order requires
	quantityOrdered int

	// attrs is the capability-dependent attribute set
	attrs Attributes

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewOrderItem creates a fresh line item for an order in a fully capable
// deployment: both gates start pending, and the audit, produced-quantity and
// notes attributes are exposed but unset.
//
// Parameters:
//   - id: Unique identifier for the item (must be a valid UUID)
//   - orderID: Identifier of the owning order (must be a valid UUID)
//   - quantityOrdered: Units required (must be positive)
//
// Example:
//
//	itm, err := item.NewOrderItem(kernel.NewUUID(), orderID, 40)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrderItem(id, orderID kernel.UUID, quantityOrdered int) (*OrderItem, error) {
	attrs := Attributes{
		AttrProductionStatus:    GateStatusPending.String(),
		AttrQualityStatus:       GateStatusPending.String(),
		AttrProductionCheckedBy: nil,
		AttrProductionCheckedAt: nil,
		AttrQualityCheckedBy:    nil,
		AttrQualityCheckedAt:    nil,
		AttrQuantityProduced:    nil,
		AttrNotes:               nil,
	}

	return RestoreOrderItem(id, orderID, quantityOrdered, attrs)
}

// RestoreOrderItem reconstructs an OrderItem from persistent storage with
// whatever attribute set the deployment exposes. A nil attrs map is treated
// as an item without any optional attributes.
func RestoreOrderItem(id, orderID kernel.UUID, quantityOrdered int, attrs Attributes) (*OrderItem, error) {
	itm := &OrderItem{
		isConstructed: true,
	}
	if attrs == nil {
		attrs = Attributes{}
	}
	itm.attrs = attrs.clone()

	if err := errors.Join(
		itm.setID(id),
		itm.setOrderID(orderID),
		itm.setQuantityOrdered(quantityOrdered),
	); err != nil {
		return nil, err
	}

	return itm, nil
}

// Validate ensures the OrderItem was properly constructed through a factory
// method.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// QuantityOrdered returns the number of units the order requires.
func (i *OrderItem) QuantityOrdered() int {
	return i.quantityOrdered
}

// Attributes returns a copy of the raw attribute set. Intended for
// persistence adapters; domain code should use the typed accessors.
func (i *OrderItem) Attributes() Attributes {
	return i.attrs.clone()
}

// Capabilities probes the item's current attribute set. The result is valid
// for a single reconciliation only and must not be cached across loads.
func (i *OrderItem) Capabilities() Capabilities {
	return ProbeCapabilities(i.attrs)
}

// GateStatus returns the structured status of the given gate.
// ok is false when the item does not expose the gate, the value is null, or
// the stored value cannot be parsed; all of these mean "no structured gate
// information" to the caller.
func (i *OrderItem) GateStatus(g Gate) (GateStatus, bool) {
	key := gateStatusKey(g)
	if !i.attrs.hasValue(key) {
		return GateStatusUnknown, false
	}
	raw, ok := i.attrs[key].(string)
	if !ok {
		return GateStatusUnknown, false
	}
	status, err := GateStatusFromString(raw)
	if err != nil {
		return GateStatusUnknown, false
	}
	return status, true
}

// CheckedBy returns the identity of the validator who decided the gate.
func (i *OrderItem) CheckedBy(g Gate) (string, bool) {
	byKey, _ := gateAuditKeys(g)
	if !i.attrs.hasValue(byKey) {
		return "", false
	}
	actor, ok := i.attrs[byKey].(string)
	return actor, ok
}

// CheckedAt returns the time the gate was decided.
func (i *OrderItem) CheckedAt(g Gate) (time.Time, bool) {
	_, atKey := gateAuditKeys(g)
	if !i.attrs.hasValue(atKey) {
		return time.Time{}, false
	}
	at, ok := i.attrs[atKey].(time.Time)
	return at, ok
}

// QuantityProduced returns the recorded produced quantity.
func (i *OrderItem) QuantityProduced() (int, bool) {
	if !i.attrs.hasValue(AttrQuantityProduced) {
		return 0, false
	}
	qty, ok := i.attrs[AttrQuantityProduced].(int)
	return qty, ok
}

// SupportsQuantityProduced reports whether the item exposes the
// produced-quantity attribute at all.
func (i *OrderItem) SupportsQuantityProduced() bool {
	return i.attrs.hasKey(AttrQuantityProduced)
}

// Notes returns the free-text notes content.
func (i *OrderItem) Notes() (string, bool) {
	if !i.attrs.hasValue(AttrNotes) {
		return "", false
	}
	notes, ok := i.attrs[AttrNotes].(string)
	return notes, ok
}

// SetGateStatus records a structured gate status.
// Returns ErrAttributeNotSupported when the item does not expose the gate,
// so that callers fall back to the notes channel instead of inventing fields
// the schema lacks.
func (i *OrderItem) SetGateStatus(g Gate, status GateStatus) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if !i.Capabilities().HasGate(g) {
		return ErrAttributeNotSupported
	}

	i.attrs[gateStatusKey(g)] = status.String()
	return nil
}

// SetAudit records who decided the gate and when.
// Returns ErrAttributeNotSupported when the item carries no audit fields.
func (i *OrderItem) SetAudit(g Gate, actor string, at time.Time) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if !i.Capabilities().HasValidationAudit {
		return ErrAttributeNotSupported
	}

	byKey, atKey := gateAuditKeys(g)
	i.attrs[byKey] = actor
	i.attrs[atKey] = at.UTC()
	return nil
}

// SetQuantityProduced records the produced quantity.
// Returns ErrAttributeNotSupported when the item does not expose the field.
func (i *OrderItem) SetQuantityProduced(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity produced must not be negative")
	}
	if !i.SupportsQuantityProduced() {
		return ErrAttributeNotSupported
	}

	i.attrs[AttrQuantityProduced] = quantity
	return nil
}

// AppendNote appends one line to the free-text notes, separating entries
// with newlines. Returns ErrAttributeNotSupported when the item carries no
// notes field.
func (i *OrderItem) AppendNote(line string) error {
	if line == "" {
		return errs.NewValueIsRequiredError("note line")
	}
	if !i.Capabilities().HasFreeTextNotes {
		return ErrAttributeNotSupported
	}

	if existing, ok := i.Notes(); ok && existing != "" {
		i.attrs[AttrNotes] = fmt.Sprintf("%s\n%s", existing, line)
	} else {
		i.attrs[AttrNotes] = line
	}
	return nil
}

// setID validates and sets the item's unique identifier.
// This is a private method used only during construction.
func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setOrderID validates and sets the owning order's identifier.
// This is a private method used only during construction.
func (i *OrderItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

// setQuantityOrdered validates and sets the ordered quantity.
// This is a private method used only during construction.
func (i *OrderItem) setQuantityOrdered(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityOrderedIsInvalid
	}
	i.quantityOrdered = quantity
	return nil
}
