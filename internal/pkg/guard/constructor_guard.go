// Package guard provides the constructor guard pattern used by commands,
// queries, and value objects throughout the application. A guard embedded in
// a struct distinguishes instances created through their designated
// constructor from zero values, so that validation can reject the latter.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been created through its
// constructor function. Embed it as a private field and set it with
// NewConstructorGuard inside the constructor; the zero value fails Validate.
//
// Example:
//
//	type RepairCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRepairCommand() RepairCommand {
//	    return RepairCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c RepairCommand) Validate() error {
//	    return c.guard.Validate(ErrRepairCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its holder as properly
// constructed. Call it only from constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the holder was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
