// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var (
	ErrGetAuditHistoryQueryIsNotConstructed = errors.New(
		"GetAuditHistoryQuery must be created via NewGetAuditHistoryQuery constructor",
	)
)

// GetAuditHistoryQuery retrieves the full audit trail of one document,
// chronological, oldest first. Ordering is by timestamp then insertion
// order, so two entries within the same clock tick keep their append order.
//
// Example:
//
//	query, err := NewGetAuditHistoryQuery(document.DisbursementVoucher, voucherID)
//	if err != nil {
//	    return err
//	}
//
//	entries, err := handler.Handle(ctx, query)
//	for _, e := range entries {
//	    fmt.Printf("%s %s: %s -> %s by %s\n",
//	        e.Timestamp, e.Action, e.FromStatus, e.ToStatus, e.ActorID)
//	}
type GetAuditHistoryQuery struct { //nolint:recvcheck //using for validation
	documentType document.Type
	documentID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAuditHistoryQuery creates a query for one document's audit trail.
func NewGetAuditHistoryQuery(documentType document.Type, documentID kernel.UUID) (GetAuditHistoryQuery, error) {
	query := GetAuditHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDocumentType(documentType),
		query.setDocumentID(documentID),
	); err != nil {
		return GetAuditHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAuditHistoryQueryIsNotConstructed if validation fails.
func (q GetAuditHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditHistoryQueryIsNotConstructed)
}

// DocumentType returns the type of the document whose trail is requested.
func (q GetAuditHistoryQuery) DocumentType() document.Type {
	return q.documentType
}

// DocumentID returns the identifier of the document whose trail is requested.
func (q GetAuditHistoryQuery) DocumentID() kernel.UUID {
	return q.documentID
}

func (q *GetAuditHistoryQuery) setDocumentType(t document.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	q.documentType = t
	return nil
}

func (q *GetAuditHistoryQuery) setDocumentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.documentID = id
	return nil
}

// GetAuditHistoryQueryResponse is one audit entry in the read model,
// shaped for reporting and export tooling.
type GetAuditHistoryQueryResponse struct {
	DocumentType string
	DocumentID   kernel.UUID
	ActorID      kernel.UUID
	Action       string
	FromStatus   string
	ToStatus     string
	Comment      string
	Timestamp    time.Time
}
