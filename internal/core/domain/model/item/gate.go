package item

import (
	"fmt"

	"fabrication/internal/pkg/errs"
)

// Gate identifies one of the two independent validation checkpoints an item
// must pass before its order can progress.
type Gate int

const (
	// GateUnknown represents an invalid or undefined gate.
	GateUnknown Gate = iota

	// GateProduction is the production validation checkpoint.
	GateProduction

	// GateQuality is the quality validation checkpoint.
	GateQuality
)

// getGateStrings returns a map of Gate values to their string representations.
func getGateStrings() map[Gate]string {
	return map[Gate]string{
		GateProduction: "production",
		GateQuality:    "quality",
	}
}

// Validate checks that the gate is one of the two defined checkpoints.
func (g Gate) Validate() error {
	if _, ok := getGateStrings()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("gate is invalid", fmt.Errorf("%d is not a valid gate", g))
	}
	return nil
}

// String returns "production" or "quality", or "unknown" for invalid values.
func (g Gate) String() string {
	if str, ok := getGateStrings()[g]; ok {
		return str
	}
	return "unknown"
}

// GateFromString parses a gate name supplied by external callers.
func GateFromString(value string) (Gate, error) {
	for gate, str := range getGateStrings() {
		if str == value {
			return gate, nil
		}
	}
	return GateUnknown, errs.NewValueIsInvalidErrorWithCause(
		"gate is invalid",
		fmt.Errorf("%q is not a valid gate", value),
	)
}

// GateStatus is the per-item outcome of one validation gate.
// Gate statuses progress pending -> approved|rejected in normal operation,
// but consumers must not assume monotonicity: the deriver recomputes the
// aggregate from the full current item set every time.
type GateStatus int

const (
	// GateStatusUnknown represents an invalid or undefined gate status.
	GateStatusUnknown GateStatus = iota

	// GateStatusPending means the gate has not been decided for the item yet.
	GateStatusPending

	// GateStatusApproved means the item passed the gate.
	GateStatusApproved

	// GateStatusRejected means the item failed the gate.
	GateStatusRejected
)

// getGateStatusStrings returns a map of GateStatus values to their string
// representations as persisted in item attributes.
func getGateStatusStrings() map[GateStatus]string {
	return map[GateStatus]string{
		GateStatusPending:  "pending",
		GateStatusApproved: "approved",
		GateStatusRejected: "rejected",
	}
}

// Validate checks that the gate status is one of the defined outcomes.
func (s GateStatus) Validate() error {
	if _, ok := getGateStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"gate status is invalid",
			fmt.Errorf("%d is not a valid gate status", s),
		)
	}
	return nil
}

// IsDecision reports whether the status is a decision an external validator
// may apply. Pending is a starting state, not a decision.
func (s GateStatus) IsDecision() bool {
	return s == GateStatusApproved || s == GateStatusRejected
}

// String returns "pending", "approved" or "rejected", or "unknown" for
// invalid values.
func (s GateStatus) String() string {
	if str, ok := getGateStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// GateStatusFromString parses a persisted or externally supplied gate status.
func GateStatusFromString(value string) (GateStatus, error) {
	for status, str := range getGateStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return GateStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"gate status is invalid",
		fmt.Errorf("%q is not a valid gate status", value),
	)
}
