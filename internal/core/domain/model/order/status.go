package order

import (
	"fmt"

	"fabrication/internal/pkg/errs"
)

// Status represents the lifecycle state of a manufacturing order.
// The aggregate status is always derived from the collective state of the
// order's items; it is never set directly by callers except for the
// administrative Cancelled state.
//
// Normal progression:
//
//	Created ──> ProductionReview ──> ProductionApproved ──> QualityReview ──>
//	QualityApproved ──> InFabrication ──> ProductionComplete ──> Done
//
// Two absorbing states sit outside the normal progression:
//   - Nonconforming: entered when any item fails a validation gate. The
//     derivation can leave it again once every production gate is approved.
//   - Cancelled: administrative terminal state. Sticky: automatic derivation
//     never overrides it.
//
// Status is a value object that provides string representations for
// persistence and display. The transition rules themselves live in the
// StatusDeriver domain service so there is a single source of truth.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first registered.
	// No validation gate has been passed yet.
	Created

	// ProductionReview indicates production-gate validation has begun but
	// not every item has been approved yet.
	ProductionReview

	// ProductionApproved indicates every item passed the production gate.
	ProductionApproved

	// QualityReview indicates quality-gate validation has begun but not
	// every item has been approved yet.
	QualityReview

	// QualityApproved indicates every item passed the quality gate.
	QualityApproved

	// InFabrication indicates the order has entered the fabrication floor.
	// This transition is made by external workflow, not by derivation.
	InFabrication

	// ProductionComplete indicates fabrication has finished.
	ProductionComplete

	// Done is the final state of a successfully completed order.
	Done

	// Nonconforming indicates at least one item was rejected at a
	// validation gate. Absorbing until the offending items are re-approved.
	Nonconforming

	// Cancelled is the administrative terminal state. It is sticky: the
	// deriver returns it unchanged regardless of item states.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "unknown",
		Created:            "created",
		ProductionReview:   "production_review",
		ProductionApproved: "production_approved",
		QualityReview:      "quality_review",
		QualityApproved:    "quality_approved",
		InFabrication:      "in_fabrication",
		ProductionComplete: "production_complete",
		Done:               "done",
		Nonconforming:      "nonconforming",
		Cancelled:          "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:            "created",
		ProductionReview:   "production_review",
		ProductionApproved: "production_approved",
		QualityReview:      "quality_review",
		QualityApproved:    "quality_approved",
		InFabrication:      "in_fabrication",
		ProductionComplete: "production_complete",
		Done:               "done",
		Nonconforming:      "nonconforming",
		Cancelled:          "cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used to ensure Status
// values from external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status as persisted and exposed
// to collaborators. Implements fmt.Stringer and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted or externally supplied status name.
// Returns an error for names that do not map to a valid status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// IsTerminal reports whether the status ends the order lifecycle.
// Terminal orders are excluded from the bulk repair scan.
func (s Status) IsTerminal() bool {
	return s == Done || s == Cancelled
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - any non-terminal status -> Cancelled
//   - Cancelled -> Cancelled (idempotent)
//
// Invalid transitions:
//   - Done -> Cancelled (completed orders cannot be cancelled)
//   - Unknown -> Cancelled (invalid initial state)
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Done {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
