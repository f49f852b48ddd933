// Package services provides domain services that implement business logic
// spanning the order aggregate and its items in the fabrication system.
//
// The package includes:
//   - StatusDeriver: the pure aggregation function mapping an order's current
//     status and its full item set to the next aggregate status
//   - ItemValidator: applies one validation decision to one item with
//     capability-appropriate update strategies and graceful fallback
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root, following
// Domain-Driven Design principles.
package services
