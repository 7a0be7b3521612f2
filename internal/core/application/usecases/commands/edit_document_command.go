package commands

import (
	"errors"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var (
	ErrEditDocumentCommandIsNotConstructed = errors.New(
		"EditDocumentCommand must be created via NewEditDocumentCommand constructor",
	)
	ErrPayloadIsRequired = errors.New("payload is required")
)

// EditDocumentCommand represents an in-place payload edit. Edits are not
// transitions: they are permitted only while the document remains in its
// type's initial status.
type EditDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	actor      actor.Actor
	payload    []byte

	guard guard.ConstructorGuard
}

// NewEditDocumentCommand creates a command to replace a document's payload.
// Validates the identifier and actor and requires a non-empty payload.
func NewEditDocumentCommand(
	documentID kernel.UUID,
	by actor.Actor,
	payload []byte,
) (EditDocumentCommand, error) {
	cmd := EditDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setActor(by),
		cmd.setPayload(payload),
	); err != nil {
		return EditDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditDocumentCommand) Validate() error {
	return c.guard.Validate(ErrEditDocumentCommandIsNotConstructed)
}

// DocumentID returns the identifier of the document to edit.
func (c EditDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// Actor returns the principal requesting the edit.
func (c EditDocumentCommand) Actor() actor.Actor {
	return c.actor
}

// Payload returns the replacement business fields as opaque JSON.
func (c EditDocumentCommand) Payload() []byte {
	return c.payload
}

func (c *EditDocumentCommand) setDocumentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.documentID = id
	return nil
}

func (c *EditDocumentCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	c.actor = by
	return nil
}

func (c *EditDocumentCommand) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return ErrPayloadIsRequired
	}
	c.payload = payload
	return nil
}
