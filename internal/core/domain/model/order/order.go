package order

import (
	"errors"
	"time"

	"fabrication/internal/core/domain/model/kernel"
	"fabrication/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNumberIsRequired is returned when creating an order without a
	// human-readable order number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
)

// Order represents a manufacturing order in the system. It is the aggregate
// root that carries the order's identity and its aggregate validation status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - The aggregate status is only changed through the reconciliation path
//     (ChangeStatus with a deriver-produced value) or through Cancel
//   - Can only be created through NewOrder or RestoreOrder
//
// The line items belonging to an order are separate entities owned by the
// order through their order identifier; they are loaded and mutated via the
// item repository, never embedded here, so that reconciliation can always
// re-read the full, current item set.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable order number shown to operators
	number string

	// status is the derived aggregate validation status
	status Status

	// updatedAt records the last status change
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Created status.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - number: Human-readable order number (must be non-empty)
//
// Returns the created order, or a validation error if any parameter is
// invalid. The order starts in Created status with updatedAt set to now.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	ord, err := order.NewOrder(orderID, "MO-2024-0117")
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, number string) (*Order, error) {
	ord := &Order{
		status:        Created,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setID(id),
		ord.setNumber(number),
	); err != nil {
		return nil, err
	}

	return ord, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its persisted status and last-updated timestamp. The restored
// order behaves identically to one created through normal domain operations.
func RestoreOrder(id kernel.UUID, number string, status Status, updatedAt time.Time) (*Order, error) {
	ord := &Order{
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setID(id),
		ord.setNumber(number),
		ord.setStatus(status),
	); err != nil {
		return nil, err
	}

	return ord, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// Status returns the current aggregate status of the order.
func (o *Order) Status() Status {
	return o.status
}

// UpdatedAt returns the time of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus sets a new aggregate status produced by the status deriver.
//
// The order itself does not re-validate the transition against its items:
// the StatusDeriver is the single source of truth for the transition table,
// and every caller goes through it. ChangeStatus only rejects statuses that
// are not valid lifecycle states.
//
// Returns:
//   - nil on success (updatedAt is refreshed)
//   - error if the status value is invalid
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel moves the order to the administrative Cancelled state.
//
// Cancelled is sticky: once set, automatic derivation never overrides it.
// Cancelling an already cancelled order succeeds without effect.
//
// Returns an error if the order is already Done.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if newStatus != o.status {
		o.status = newStatus
		o.updatedAt = time.Now().UTC()
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setNumber validates and sets the human-readable order number.
// This is a private method used only during construction.
func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	o.number = number
	return nil
}

// setStatus validates and sets the persisted status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
