package document

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Type identifies the kind of business document under lifecycle control.
// The set of types is closed: each type carries its own transition table in
// the catalog, and a status value is only meaningful within its type.
type Type string

const (
	// DisbursementVoucher is a cash disbursement voucher following the
	// maker-checker-approver flow: draft -> pending_check -> checked -> approved.
	DisbursementVoucher Type = "disbursement-voucher"

	// DeliveryNote tracks goods leaving the warehouse:
	// issued -> in_transit -> delivered | returned.
	DeliveryNote Type = "delivery-note"

	// HandoverCertificate records the handover of equipment or cargo:
	// draft -> pending_signature -> signed | archived.
	HandoverCertificate Type = "handover-certificate"

	// GeneratedDocument is a system-generated compliance document:
	// draft -> final -> sent -> archived.
	GeneratedDocument Type = "generated-document"

	// WorkPermit is a safety work permit:
	// draft -> pending_approval -> active | rejected, active -> closed.
	WorkPermit Type = "work-permit"
)

// getValidTypes returns the closed set of document types.
// Only valid types are included to support validation.
func getValidTypes() map[Type]struct{} {
	return map[Type]struct{}{
		DisbursementVoucher: {},
		DeliveryNote:        {},
		HandoverCertificate: {},
		GeneratedDocument:   {},
		WorkPermit:          {},
	}
}

// TypeFromString parses a document type from its wire representation.
// Returns an error if the string does not name a known type.
func TypeFromString(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the Type value is a member of the closed enumeration.
//
// Returns:
//   - nil if the type is valid
//   - error with details if the type is unknown
func (t Type) Validate() error {
	if _, ok := getValidTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("documentType",
			fmt.Errorf("%q is not a known document type", string(t)))
	}
	return nil
}

// String returns the wire representation of the document type.
func (t Type) String() string {
	return string(t)
}
