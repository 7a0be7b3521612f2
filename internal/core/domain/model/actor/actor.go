package actor

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the principal requesting a workflow operation. It pairs the
// principal's identity with the effective role the caller resolved for this
// request. The engine never looks the role up itself; a second read could be
// stale relative to the caller's session.
//
// Actor is a value object: immutable after construction and safe to copy.
type Actor struct {
	// id is the principal's unique identifier
	id kernel.UUID

	// role is the effective role for this request
	role Role

	// guard ensures the actor was created via NewActor
	guard kernel.ConstructorGuard
}

// NewActor creates an Actor from a principal identifier and the effective
// role supplied by the caller.
//
// Returns:
//   - Actor: the constructed actor if both inputs are valid
//   - error: validation error if the id or role is invalid
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor instance was properly constructed through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the principal's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the effective role the actor acts under for this request.
func (a Actor) Role() Role {
	return a.role
}

// Capabilities derives the actor's capability set from its effective role.
// The set is recomputed on every call; see CapabilitiesOf.
func (a Actor) Capabilities() Capabilities {
	return CapabilitiesOf(a.role)
}

// IsEqual compares two actors by their principal identifiers.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id)
}
