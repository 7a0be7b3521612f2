package document

import (
	"errors"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
)

var (
	// ErrDocumentIsNotConstructed is returned when a Document instance was not
	// created through NewDocument or RestoreDocument. This ensures all
	// documents are properly validated.
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument or RestoreDocument")

	// ErrDocumentNotEditable is returned when an in-place payload edit is
	// requested on a document that has left its initial status. Once a
	// document is in flight, its content changes only through transitions.
	ErrDocumentNotEditable = errors.New("document is not editable")
)

// Document is the aggregate root for every business document under lifecycle
// control: disbursement vouchers, delivery notes, handover certificates,
// generated compliance documents, and work permits. The engine treats the
// document's business fields as an opaque payload; only the lifecycle
// attributes matter here.
//
// Document follows these invariants:
//   - status is always a member of the status set declared for its type
//   - a document is constructed in its type's initial status, never any other
//   - status changes only through catalog edges (ApplyEdge)
//   - the payload is editable only while the document is in its initial status
//   - can only be created through NewDocument or RestoreDocument
type Document struct {
	// id is the unique identifier for the document
	id kernel.UUID

	// docType selects the transition table governing this document
	docType Type

	// status is the current lifecycle state
	status Status

	// createdBy is the authoring principal, fixed at creation
	createdBy kernel.UUID

	// submittedBy, checkedBy, approvedBy record which principal fired the
	// corresponding workflow step (nil until the step happens)
	submittedBy *kernel.UUID
	checkedBy   *kernel.UUID
	approvedBy  *kernel.UUID

	// parentJobID links the document to the job order it belongs to
	// (nil for standalone documents)
	parentJobID *kernel.UUID

	// payload holds the document's business fields as opaque JSON
	payload []byte

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the document was created via a constructor
	isConstructed bool
}

// NewDocument creates a document of the given type in the type's initial
// status. This is the only way a document enters the system; the engine
// never constructs documents in any other status.
//
// Parameters:
//   - id: unique identifier for the document (must be a valid UUID)
//   - docType: one of the closed set of document types
//   - createdBy: the authoring principal
//   - parentJobID: optional parent job order reference
//   - payload: the document's business fields as opaque JSON
//
// Returns:
//   - *Document: the created document if all validations pass
//   - error: validation error if any parameter is invalid
func NewDocument(
	id kernel.UUID,
	docType Type,
	createdBy kernel.UUID,
	parentJobID *kernel.UUID,
	payload []byte,
) (*Document, error) {
	if err := errors.Join(
		id.Validate(),
		docType.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	if parentJobID != nil {
		if err := parentJobID.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	return &Document{
		id:            id,
		docType:       docType,
		status:        InitialStatus(docType),
		createdBy:     createdBy,
		parentJobID:   parentJobID,
		payload:       payload,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDocument reconstructs a document from persistence. Unlike
// NewDocument it accepts any status, but still requires the status to be a
// member of the type's declared status set.
func RestoreDocument(
	id kernel.UUID,
	docType Type,
	status Status,
	createdBy kernel.UUID,
	submittedBy, checkedBy, approvedBy, parentJobID *kernel.UUID,
	payload []byte,
	createdAt, updatedAt time.Time,
) (*Document, error) {
	if err := errors.Join(
		id.Validate(),
		docType.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateFor(docType); err != nil {
		return nil, err
	}

	return &Document{
		id:            id,
		docType:       docType,
		status:        status,
		createdBy:     createdBy,
		submittedBy:   submittedBy,
		checkedBy:     checkedBy,
		approvedBy:    approvedBy,
		parentJobID:   parentJobID,
		payload:       payload,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Document instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// IsEqual compares two documents by their unique identifiers.
func (d *Document) IsEqual(other *Document) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// DocumentType returns the type selecting this document's transition table.
func (d *Document) DocumentType() Type {
	return d.docType
}

// Status returns the current lifecycle status.
func (d *Document) Status() Status {
	return d.status
}

// CreatedBy returns the authoring principal's identifier.
func (d *Document) CreatedBy() kernel.UUID {
	return d.createdBy
}

// SubmittedBy returns the principal that submitted the document.
// Returns nil if the document has not been submitted.
func (d *Document) SubmittedBy() *kernel.UUID {
	return d.submittedBy
}

// CheckedBy returns the principal that checked the document.
// Returns nil if the document has not been checked.
func (d *Document) CheckedBy() *kernel.UUID {
	return d.checkedBy
}

// ApprovedBy returns the principal that approved the document.
// Returns nil if the document has not been approved.
func (d *Document) ApprovedBy() *kernel.UUID {
	return d.approvedBy
}

// ParentJobID returns the parent job order reference.
// Returns nil for standalone documents.
func (d *Document) ParentJobID() *kernel.UUID {
	return d.parentJobID
}

// Payload returns the document's business fields as opaque JSON.
func (d *Document) Payload() []byte {
	return d.payload
}

// CreatedAt returns the creation timestamp.
func (d *Document) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (d *Document) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsTerminal reports whether the document sits in a terminal status of its type.
func (d *Document) IsTerminal() bool {
	return IsTerminal(d.docType, d.status)
}

// ApplyEdge moves the document along a catalog edge fired by the given actor.
// The edge must belong to this document's type and leave the document's
// current status; the executor is responsible for authorization and for the
// conditional persistence write.
//
// On success the status advances and the step is stamped with the acting
// principal: submit stamps submittedBy, check stamps checkedBy, approve
// stamps approvedBy.
func (d *Document) ApplyEdge(e TransitionEdge, by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	if e.DocumentType != d.docType || e.From != d.status {
		return fmt.Errorf("%w: edge %s does not leave %s/%s",
			ErrNoSuchTransition, e.ID(), d.docType, d.status)
	}

	if _, err := FindEdge(e.DocumentType, e.From, e.To); err != nil {
		return err
	}

	actorID := by.ID()
	switch e.RequiredCapability {
	case actor.CapabilitySubmit:
		d.submittedBy = &actorID
	case actor.CapabilityCheck:
		d.checkedBy = &actorID
	case actor.CapabilityApprove:
		d.approvedBy = &actorID
	case actor.CapabilityCreate, actor.CapabilityReject, actor.CapabilityEdit, actor.CapabilityUnknown:
		// no step stamp for these capabilities
	}

	d.status = e.To
	d.updatedAt = time.Now().UTC()
	return nil
}

// EditPayload replaces the document's business fields in place.
// Permitted only while the document remains in its type's initial status;
// any later edit must happen through transitions.
func (d *Document) EditPayload(payload []byte) error {
	if d.status != InitialStatus(d.docType) {
		return fmt.Errorf("%w: %s is in status %s", ErrDocumentNotEditable, d.id, d.status)
	}

	d.payload = payload
	d.updatedAt = time.Now().UTC()
	return nil
}
