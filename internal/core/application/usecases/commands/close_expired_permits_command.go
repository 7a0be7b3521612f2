package commands

import (
	"errors"

	"docflow/internal/pkg/guard"
)

var (
	ErrCloseExpiredPermitsCommandIsNotConstructed = errors.New(
		"CloseExpiredPermitsCommand must be created via NewCloseExpiredPermitsCommand constructor",
	)
)

// CloseExpiredPermitsCommand triggers closure of all active work permits
// whose validity window has ended. This batch operation runs each closure
// through the ordinary transition contract, one permit at a time.
//
// Example:
//
//	cmd := NewCloseExpiredPermitsCommand()
//	handler := NewCloseExpiredPermitsCommandHandler(uowFactory, transitions, systemActor)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Permit expiry sweep failed: %v", err)
//	}
type CloseExpiredPermitsCommand struct {
	guard guard.ConstructorGuard
}

// NewCloseExpiredPermitsCommand creates a command to sweep expired permits.
// This is a parameterless command that processes all overdue active permits.
func NewCloseExpiredPermitsCommand() CloseExpiredPermitsCommand {
	command := CloseExpiredPermitsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrCloseExpiredPermitsCommandIsNotConstructed if validation fails.
func (c *CloseExpiredPermitsCommand) Validate() error {
	return c.guard.Validate(ErrCloseExpiredPermitsCommandIsNotConstructed)
}
