package services

import (
	"errors"
	"fmt"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
)

var (
	// ErrInsufficientCapability is returned when the actor's effective role
	// does not grant the capability an edge requires.
	ErrInsufficientCapability = errors.New("insufficient capability")

	// ErrSelfApprovalForbidden is returned when an actor tries to check or
	// approve a document it authored. Segregation of duties holds even when
	// the actor otherwise holds the capability.
	ErrSelfApprovalForbidden = errors.New("self approval forbidden")
)

// WorkflowGuard is a domain service that decides whether an actor may fire a
// requested transition. It combines three checks in order: the edge must
// exist in the catalog, the actor's capability set must contain the edge's
// required capability, and check/approve edges must not be fired by the
// document's author.
//
// The guard is pure: it never mutates state and derives capabilities fresh on
// every call.
//
// Example usage:
//
//	guard := services.NewWorkflowGuard()
//	edge, err := guard.Authorize(document.DisbursementVoucher,
//	    document.StatusPendingCheck, document.StatusChecked, checker, makerID)
//	if errors.Is(err, services.ErrSelfApprovalForbidden) {
//	    // The checker authored this voucher; someone else must check it.
//	}
type WorkflowGuard struct{}

// NewWorkflowGuard creates a new WorkflowGuard instance.
func NewWorkflowGuard() WorkflowGuard {
	return WorkflowGuard{}
}

// Authorize decides whether the actor may fire (docType, from -> to) on a
// document authored by createdBy.
//
// Returns:
//   - the catalog edge, so the caller can apply it and dispatch its side
//     effects, when the transition is allowed
//   - document.ErrNoSuchTransition if the edge is not in the type's table
//   - ErrInsufficientCapability if the actor lacks the required capability
//   - ErrSelfApprovalForbidden if a check/approve edge targets the author's
//     own document
func (g WorkflowGuard) Authorize(
	docType document.Type,
	from, to document.Status,
	by actor.Actor,
	createdBy kernel.UUID,
) (document.TransitionEdge, error) {
	if err := by.Validate(); err != nil {
		return document.TransitionEdge{}, err
	}

	edge, err := document.FindEdge(docType, from, to)
	if err != nil {
		return document.TransitionEdge{}, err
	}

	if !by.Capabilities().Has(edge.RequiredCapability) {
		return document.TransitionEdge{}, fmt.Errorf(
			"%w: role %s does not grant %s",
			ErrInsufficientCapability, by.Role(), edge.RequiredCapability)
	}

	requiresSecondPair := edge.RequiredCapability == actor.CapabilityCheck ||
		edge.RequiredCapability == actor.CapabilityApprove
	if requiresSecondPair && by.ID().IsEqual(createdBy) {
		return document.TransitionEdge{}, fmt.Errorf(
			"%w: actor %s authored the document",
			ErrSelfApprovalForbidden, by.ID())
	}

	return edge, nil
}

// AuthorizeEdit decides whether the actor may edit the document's payload in
// place. Edits are a distinct, simpler action than transitions: they require
// the edit capability and are permitted only while the document remains in
// its type's initial status.
//
// Returns:
//   - ErrInsufficientCapability if the actor lacks the edit capability
//   - document.ErrDocumentNotEditable if the document left its initial status
func (g WorkflowGuard) AuthorizeEdit(doc *document.Document, by actor.Actor) error {
	if err := errors.Join(doc.Validate(), by.Validate()); err != nil {
		return err
	}

	if !by.Capabilities().Has(actor.CapabilityEdit) {
		return fmt.Errorf("%w: role %s does not grant %s",
			ErrInsufficientCapability, by.Role(), actor.CapabilityEdit)
	}

	if doc.Status() != document.InitialStatus(doc.DocumentType()) {
		return fmt.Errorf("%w: %s is in status %s",
			document.ErrDocumentNotEditable, doc.ID(), doc.Status())
	}

	return nil
}
