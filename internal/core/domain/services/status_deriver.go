package services

import (
	"fabrication/internal/core/domain/model/item"
	"fabrication/internal/core/domain/model/order"
)

// StatusDeriver is the domain service that computes an order's aggregate
// status from the full set of its items' gate states. It is the single
// source of truth for the order transition table: both the per-validation
// reconciliation and the bulk repair scan go through it, and no other code
// assigns derived statuses.
//
// Key properties:
//   - Pure: the same inputs always produce the same output, no side effects
//   - Full recomputation: gate statuses are read from the complete current
//     item set on every call, never incrementally from deltas
//   - Rejection precedence: a single rejected item always wins over an
//     otherwise fully approved set
//   - Sticky terminal: Cancelled is returned unchanged regardless of items
//
// Transition rules, evaluated in order:
//  1. Cancelled stays Cancelled.
//  2. Any production rejection while in Created or ProductionReview
//     moves the order to Nonconforming.
//  3. All production approvals while in Created, ProductionReview or
//     Nonconforming move the order to ProductionApproved. Recovery from
//     Nonconforming requires that no quality rejection stands either, so an
//     order held back by a rejected quality check cannot oscillate between
//     the recovery and rejection rules.
//  4. Any quality rejection while in QualityReview moves the order to
//     Nonconforming.
//  5. All quality approvals while in QualityReview or ProductionApproved
//     move the order to QualityApproved.
//  6. Partial approvals advance the order from the predecessor state into
//     the corresponding review state, so begun validation is visible.
//  7. Otherwise the current status is returned unchanged.
//
// Items that do not expose a gate's structured status are excluded from that
// gate's tallies; when no item exposes it at all, the rules cannot fire and
// DeriveAfterGate applies the coarse single-step fallback instead.
//
// Example usage:
//
//	deriver := services.NewStatusDeriver()
//	next := deriver.Derive(ord.Status(), items)
//	if next != ord.Status() {
//	    // persist the new aggregate status
//	}
type StatusDeriver struct{}

// NewStatusDeriver creates a new StatusDeriver instance.
// The service is stateless and safe for concurrent use.
func NewStatusDeriver() StatusDeriver {
	return StatusDeriver{}
}

// Derive maps (current aggregate status, full current item set) to the next
// aggregate status. It is idempotent: feeding the result back with the same
// items returns the same value.
func (d StatusDeriver) Derive(current order.Status, items []*item.OrderItem) order.Status {
	if current == order.Cancelled {
		return current
	}

	production := tallyGate(items, item.GateProduction)
	quality := tallyGate(items, item.GateQuality)

	switch {
	case production.rejected > 0 &&
		(current == order.Created || current == order.ProductionReview):
		return order.Nonconforming

	case production.allApproved() && quality.rejected == 0 &&
		(current == order.Created || current == order.ProductionReview || current == order.Nonconforming):
		return order.ProductionApproved

	case quality.rejected > 0 && current == order.QualityReview:
		return order.Nonconforming

	case quality.allApproved() &&
		(current == order.QualityReview || current == order.ProductionApproved):
		return order.QualityApproved

	case production.someApproved() && current == order.Created:
		return order.ProductionReview

	case quality.someApproved() && current == order.ProductionApproved:
		return order.QualityReview
	}

	return current
}

// DeriveAfterGate derives the next status right after a validation event on
// the given gate. It first applies the full rule set; when that yields no
// change and no item exposes the gate's structured status, it falls back to
// a coarse single-step advance: without per-item detail there is no way to
// assess partial completion, so the validation call itself is the signal
// that the gate progressed.
func (d StatusDeriver) DeriveAfterGate(current order.Status, items []*item.OrderItem, g item.Gate) order.Status {
	next := d.Derive(current, items)
	if next != current {
		return next
	}
	if current == order.Cancelled {
		return current
	}

	for _, itm := range items {
		if itm.Capabilities().HasGate(g) {
			return current
		}
	}

	return advanceOneStep(current, g)
}

// advanceOneStep moves the status one step along the gate's segment of the
// lifecycle. Statuses outside that segment are returned unchanged.
func advanceOneStep(current order.Status, g item.Gate) order.Status {
	switch g {
	case item.GateProduction:
		switch current {
		case order.Created:
			return order.ProductionReview
		case order.ProductionReview:
			return order.ProductionApproved
		}
	case item.GateQuality:
		switch current {
		case order.ProductionApproved:
			return order.QualityReview
		case order.QualityReview:
			return order.QualityApproved
		}
	}
	return current
}

// gateTally counts gate outcomes across the items that expose the gate.
type gateTally struct {
	capable  int
	approved int
	rejected int
}

// tallyGate reads the gate status of every item that exposes it. Items
// without the structured field contribute nothing: their validation state is
// unknowable at aggregation time.
func tallyGate(items []*item.OrderItem, g item.Gate) gateTally {
	var t gateTally
	for _, itm := range items {
		status, ok := itm.GateStatus(g)
		if !ok {
			continue
		}
		t.capable++
		switch status {
		case item.GateStatusApproved:
			t.approved++
		case item.GateStatusRejected:
			t.rejected++
		}
	}
	return t
}

// allApproved reports whether every gate-capable item is approved.
// An empty tally never counts as fully approved.
func (t gateTally) allApproved() bool {
	return t.capable > 0 && t.approved == t.capable
}

// someApproved reports whether validation has begun but not finished.
func (t gateTally) someApproved() bool {
	return t.approved > 0 && t.approved < t.capable
}
