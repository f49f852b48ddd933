package commands

import (
	"errors"

	"fabrication/internal/pkg/guard"
)

var ErrRepairStatusesCommandIsNotConstructed = errors.New(
	"RepairStatusesCommand must be created via NewRepairStatusesCommand constructor",
)

// RepairStatusesCommand triggers the bulk repair scan: every unfinished
// order is re-derived from its items and corrected where the stored
// aggregate status has drifted. The command carries no parameters.
type RepairStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewRepairStatusesCommand creates a command to run the repair scan.
func NewRepairStatusesCommand() (RepairStatusesCommand, error) {
	return RepairStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRepairStatusesCommandIsNotConstructed if validation fails.
func (c RepairStatusesCommand) Validate() error {
	return c.guard.Validate(ErrRepairStatusesCommandIsNotConstructed)
}
