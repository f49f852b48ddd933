// Package item provides the OrderItem entity and its capability model.
//
// An order item must pass two independent validation gates (production and
// quality) before its order can progress. Which validation attributes an
// item exposes varies by deployment: the capability prober classifies each
// item's attribute set into a typed Capabilities descriptor, and the item
// validator chooses capability-appropriate update strategies with graceful
// fallback to free-text notes when structured fields are absent.
//
// The package includes:
//   - OrderItem: line item entity with capability-dependent attributes
//   - Gate / GateStatus: the validation checkpoints and their outcomes
//   - Attributes / Capabilities / ProbeCapabilities: the capability model
//
// Capabilities are recomputed on every load and never cached across
// reconciliations, because different items may expose different shapes in an
// evolving schema.
package item
