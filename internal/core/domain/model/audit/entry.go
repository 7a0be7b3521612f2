package audit

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through the NewEntry factory method.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one record of the append-only audit ledger. Every transition
// request produces exactly one entry: success for committed changes, reject
// for guard denials, attempt for requests that lost the concurrency race.
// Entries are never updated or deleted.
//
// Entry is a value object; FromStatus is empty for document-creation entries.
type Entry struct {
	documentType document.Type
	documentID   kernel.UUID
	actorID      kernel.UUID
	action       Action
	fromStatus   document.Status
	toStatus     document.Status
	comment      string
	timestamp    time.Time

	isConstructed bool
}

// NewEntry creates an audit entry for a transition request.
// FromStatus may be empty (document creation); all other attributes are required.
func NewEntry(
	documentType document.Type,
	documentID kernel.UUID,
	actorID kernel.UUID,
	action Action,
	fromStatus, toStatus document.Status,
	comment string,
	timestamp time.Time,
) (Entry, error) {
	if err := errors.Join(
		documentType.Validate(),
		documentID.Validate(),
		actorID.Validate(),
		action.Validate(),
		toStatus.Validate(),
	); err != nil {
		return Entry{}, err
	}

	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	return Entry{
		documentType:  documentType,
		documentID:    documentID,
		actorID:       actorID,
		action:        action,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		comment:       comment,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry instance was properly constructed through NewEntry.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// DocumentType returns the type of the document the entry concerns.
func (e Entry) DocumentType() document.Type {
	return e.documentType
}

// DocumentID returns the identifier of the document the entry concerns.
func (e Entry) DocumentID() kernel.UUID {
	return e.documentID
}

// ActorID returns the principal that made the transition request.
func (e Entry) ActorID() kernel.UUID {
	return e.actorID
}

// Action returns what the entry records: attempt, success, or reject.
func (e Entry) Action() Action {
	return e.action
}

// FromStatus returns the status the request expected to leave.
// Empty for document-creation entries.
func (e Entry) FromStatus() document.Status {
	return e.fromStatus
}

// ToStatus returns the status the request targeted.
func (e Entry) ToStatus() document.Status {
	return e.toStatus
}

// Comment returns the free-form comment supplied with the request, if any.
func (e Entry) Comment() string {
	return e.comment
}

// Timestamp returns when the request was processed.
func (e Entry) Timestamp() time.Time {
	return e.timestamp
}
