package commands

import (
	"errors"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var (
	ErrRequestTransitionCommandIsNotConstructed = errors.New(
		"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
	)
)

// RequestTransitionCommand represents a request to move a document along one
// edge of its type's transition table. The caller states the status it
// observed (expectedFrom); the engine refuses to act on an outdated view.
//
// Example:
//
//	cmd, err := NewRequestTransitionCommand(
//	    document.DisbursementVoucher, voucherID,
//	    document.StatusPendingCheck, document.StatusChecked,
//	    checker, "amounts verified against contract")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	newStatus, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, commands.ErrStaleState) {
//	    // Someone else moved the voucher first; re-fetch and decide again.
//	}
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	documentType document.Type
	documentID   kernel.UUID
	expectedFrom document.Status
	to           document.Status
	actor        actor.Actor
	comment      string

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a transition request.
// Validates the document type, identifier, both statuses, and the actor.
// The comment is optional free-form context recorded on the audit entry.
func NewRequestTransitionCommand(
	documentType document.Type,
	documentID kernel.UUID,
	expectedFrom, to document.Status,
	by actor.Actor,
	comment string,
) (RequestTransitionCommand, error) {
	cmd := RequestTransitionCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentType(documentType),
		cmd.setDocumentID(documentID),
		cmd.setStatuses(expectedFrom, to),
		cmd.setActor(by),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// DocumentType returns the type of the document to transition.
func (c RequestTransitionCommand) DocumentType() document.Type {
	return c.documentType
}

// DocumentID returns the identifier of the document to transition.
func (c RequestTransitionCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// ExpectedFrom returns the status the caller observed before requesting.
func (c RequestTransitionCommand) ExpectedFrom() document.Status {
	return c.expectedFrom
}

// To returns the requested target status.
func (c RequestTransitionCommand) To() document.Status {
	return c.to
}

// Actor returns the principal making the request, with its effective role.
func (c RequestTransitionCommand) Actor() actor.Actor {
	return c.actor
}

// Comment returns the optional free-form comment for the audit entry.
func (c RequestTransitionCommand) Comment() string {
	return c.comment
}

func (c *RequestTransitionCommand) setDocumentType(t document.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.documentType = t
	return nil
}

func (c *RequestTransitionCommand) setDocumentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.documentID = id
	return nil
}

func (c *RequestTransitionCommand) setStatuses(expectedFrom, to document.Status) error {
	if err := errors.Join(
		expectedFrom.Validate(),
		to.Validate(),
	); err != nil {
		return err
	}
	c.expectedFrom = expectedFrom
	c.to = to
	return nil
}

func (c *RequestTransitionCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	c.actor = by
	return nil
}
