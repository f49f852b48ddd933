package services

import (
	"fmt"
	"time"

	"fabrication/internal/core/domain/model/item"
	"fabrication/internal/pkg/errs"
)

// Decision carries one validation outcome for one item: which gate was
// decided, how, by whom and when, plus the optional produced quantity and
// free-text notes supplied by the validator.
type Decision struct {
	// Gate is the validation checkpoint being decided.
	Gate item.Gate

	// Outcome is the decision: approved or rejected. Pending is not a
	// decision and is rejected by Validate.
	Outcome item.GateStatus

	// Actor identifies who made the decision.
	Actor string

	// DecidedAt is when the decision was made.
	DecidedAt time.Time

	// QuantityProduced optionally records how many units were produced.
	QuantityProduced *int

	// Notes optionally carries free-text remarks from the validator.
	Notes string
}

// Validate checks the decision is complete and well-formed.
func (d Decision) Validate() error {
	if err := d.Gate.Validate(); err != nil {
		return err
	}
	if !d.Outcome.IsDecision() {
		return errs.NewValueIsInvalidError("outcome must be approved or rejected")
	}
	if d.Actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if d.DecidedAt.IsZero() {
		return errs.NewValueIsRequiredError("decidedAt")
	}
	if d.QuantityProduced != nil && *d.QuantityProduced < 0 {
		return errs.NewValueIsInvalidError("quantity produced must not be negative")
	}
	return nil
}

// auditLine renders the synthetic audit entry written to free-text notes
// when the item has no structured field for the decision.
func (d Decision) auditLine() string {
	return fmt.Sprintf("[%s] %s %s by %s",
		d.DecidedAt.UTC().Format(time.RFC3339), d.Gate, d.Outcome, d.Actor)
}

// ItemValidator is the domain service that applies one validation decision
// to one item, choosing among capability-appropriate update strategies with
// graceful fallback when specialized attributes are absent.
//
// Update priority:
//  1. The gate-specific status field, if the item exposes it
//  2. The audit actor and timestamp, if the item exposes them
//  3. The produced-quantity field, if exposed and a value was supplied
//  4. A timestamped synthetic audit line appended to free-text notes when
//     no structured field exists for the decision
//
// When none of the strategies apply the decision is still acknowledged as a
// successful no-op: a validation action is never blocked solely because the
// schema lacks audit columns.
//
// Example usage:
//
//	validator := services.NewItemValidator()
//	changed, err := validator.Apply(itm, services.Decision{
//	    Gate:      item.GateProduction,
//	    Outcome:   item.GateStatusApproved,
//	    Actor:     "inspector-7",
//	    DecidedAt: time.Now(),
//	})
type ItemValidator struct{}

// NewItemValidator creates a new ItemValidator instance.
// The service is stateless and safe for concurrent use.
func NewItemValidator() ItemValidator {
	return ItemValidator{}
}

// Apply mutates the item in memory according to the decision and the item's
// capabilities. It reports whether any field changed; persisting the updated
// item is the caller's responsibility, so the write stays atomic.
func (v ItemValidator) Apply(itm *item.OrderItem, decision Decision) (bool, error) {
	if err := itm.Validate(); err != nil {
		return false, err
	}
	if err := decision.Validate(); err != nil {
		return false, err
	}

	caps := itm.Capabilities()
	changed := false

	if caps.HasGate(decision.Gate) {
		if err := itm.SetGateStatus(decision.Gate, decision.Outcome); err != nil {
			return false, err
		}
		changed = true
	}

	if caps.HasValidationAudit {
		if err := itm.SetAudit(decision.Gate, decision.Actor, decision.DecidedAt); err != nil {
			return false, err
		}
		changed = true
	}

	if decision.QuantityProduced != nil && itm.SupportsQuantityProduced() {
		if err := itm.SetQuantityProduced(*decision.QuantityProduced); err != nil {
			return false, err
		}
		changed = true
	}

	if !caps.HasGate(decision.Gate) && caps.HasFreeTextNotes {
		if err := itm.AppendNote(decision.auditLine()); err != nil {
			return false, err
		}
		changed = true
	}

	if decision.Notes != "" && caps.HasFreeTextNotes {
		if err := itm.AppendNote(decision.Notes); err != nil {
			return false, err
		}
		changed = true
	}

	return changed, nil
}
