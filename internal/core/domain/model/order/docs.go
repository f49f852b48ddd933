// Package order provides domain entities and business logic for manufacturing
// order management. It implements the Order aggregate root and the Status
// lifecycle enum.
//
// The package includes:
//   - Order: The aggregate root carrying order identity and aggregate status
//   - Status: The enumerated order lifecycle with persistence-safe names
//
// Key business rules:
//   - The aggregate status is derived from the collective state of the
//     order's items; it is changed only through the reconciliation path
//   - Cancelled is an administrative sticky state that derivation never
//     overrides; Done and Cancelled are terminal
//   - Orders can only be created through NewOrder or RestoreOrder
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
