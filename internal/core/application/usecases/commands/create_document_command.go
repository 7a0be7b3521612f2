package commands

import (
	"errors"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var (
	ErrCreateDocumentCommandIsNotConstructed = errors.New(
		"CreateDocumentCommand must be created via NewCreateDocumentCommand constructor",
	)
)

// CreateDocumentCommand represents a request to create a new document in its
// type's initial status. The payload carries the document's business fields
// as opaque JSON; the engine never inspects it.
type CreateDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID   kernel.UUID
	documentType document.Type
	actor        actor.Actor
	parentJobID  *kernel.UUID
	payload      []byte

	guard guard.ConstructorGuard
}

// NewCreateDocumentCommand creates a command to register a new document.
// Validates the identifier, type, and actor; parentJobID is optional and,
// when present, must be a valid UUID.
func NewCreateDocumentCommand(
	documentID kernel.UUID,
	documentType document.Type,
	by actor.Actor,
	parentJobID *kernel.UUID,
	payload []byte,
) (CreateDocumentCommand, error) {
	cmd := CreateDocumentCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setDocumentType(documentType),
		cmd.setActor(by),
		cmd.setParentJobID(parentJobID),
	); err != nil {
		return CreateDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDocumentCommand) Validate() error {
	return c.guard.Validate(ErrCreateDocumentCommandIsNotConstructed)
}

// DocumentID returns the identifier for the new document.
func (c CreateDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// DocumentType returns the type of document to create.
func (c CreateDocumentCommand) DocumentType() document.Type {
	return c.documentType
}

// Actor returns the authoring principal.
func (c CreateDocumentCommand) Actor() actor.Actor {
	return c.actor
}

// ParentJobID returns the optional parent job order reference.
func (c CreateDocumentCommand) ParentJobID() *kernel.UUID {
	return c.parentJobID
}

// Payload returns the document's business fields as opaque JSON.
func (c CreateDocumentCommand) Payload() []byte {
	return c.payload
}

func (c *CreateDocumentCommand) setDocumentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.documentID = id
	return nil
}

func (c *CreateDocumentCommand) setDocumentType(t document.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.documentType = t
	return nil
}

func (c *CreateDocumentCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	c.actor = by
	return nil
}

func (c *CreateDocumentCommand) setParentJobID(parentJobID *kernel.UUID) error {
	if parentJobID != nil {
		if err := parentJobID.Validate(); err != nil {
			return err
		}
	}
	c.parentJobID = parentJobID
	return nil
}
