package document

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Status represents a lifecycle state of a document. A status value is only
// meaningful within the transition table of its document type: "draft" on a
// disbursement voucher and "draft" on a work permit are different states that
// happen to share a name.
//
// Membership checks against a type's status set live in the catalog
// (StatusesFor, IsTerminal); Status itself only guards against empty values.
type Status string

// Statuses observed across the catalog. Listed here for callers that need to
// reference a concrete state; the per-type tables in catalog.go are the
// authority on which statuses belong to which type.
const (
	StatusDraft            Status = "draft"
	StatusPendingCheck     Status = "pending_check"
	StatusChecked          Status = "checked"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusIssued           Status = "issued"
	StatusInTransit        Status = "in_transit"
	StatusDelivered        Status = "delivered"
	StatusReturned         Status = "returned"
	StatusPendingSignature Status = "pending_signature"
	StatusSigned           Status = "signed"
	StatusFinal            Status = "final"
	StatusSent             Status = "sent"
	StatusArchived         Status = "archived"
	StatusPendingApproval  Status = "pending_approval"
	StatusActive           Status = "active"
	StatusClosed           Status = "closed"
)

// StatusFromString parses a status from its wire representation.
// Returns an error if the string is empty.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is not empty.
// Membership in a type's status set is validated via ValidateFor.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// ValidateFor checks that the status is a member of the status set declared
// for the given document type.
func (s Status) ValidateFor(docType Type) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := docType.Validate(); err != nil {
		return err
	}

	for _, known := range StatusesFor(docType) {
		if known == s {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a status of document type %q", string(s), docType))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
