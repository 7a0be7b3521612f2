package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var (
	ErrGetDocumentsByStatusQueryIsNotConstructed = errors.New(
		"GetDocumentsByStatusQuery must be created via NewGetDocumentsByStatusQuery constructor",
	)
)

// GetDocumentsByStatusQuery requests all documents of one type that are
// currently in a given workflow status.
type GetDocumentsByStatusQuery struct {
	documentType document.Type
	status       document.Status

	guard guard.ConstructorGuard
}

// NewGetDocumentsByStatusQuery creates a validated query. The status must
// belong to the document type's workflow.
func NewGetDocumentsByStatusQuery(
	documentType document.Type,
	status document.Status,
) (GetDocumentsByStatusQuery, error) {
	query := GetDocumentsByStatusQuery{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		query.setDocumentType(documentType),
		query.setStatus(status),
	)
	if err != nil {
		return GetDocumentsByStatusQuery{}, err
	}

	return query, nil
}

func (q *GetDocumentsByStatusQuery) setDocumentType(documentType document.Type) error {
	if err := documentType.Validate(); err != nil {
		return err
	}
	q.documentType = documentType
	return nil
}

func (q *GetDocumentsByStatusQuery) setStatus(status document.Status) error {
	if err := status.ValidateFor(q.documentType); err != nil {
		return err
	}
	q.status = status
	return nil
}

// Validate checks that the query was created via its constructor.
func (q GetDocumentsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentsByStatusQueryIsNotConstructed)
}

// DocumentType returns the requested document type.
func (q GetDocumentsByStatusQuery) DocumentType() document.Type {
	return q.documentType
}

// Status returns the requested workflow status.
func (q GetDocumentsByStatusQuery) Status() document.Status {
	return q.status
}

// GetDocumentsByStatusQueryResponse is the read model of one matching document.
type GetDocumentsByStatusQueryResponse struct {
	ID           kernel.UUID
	DocumentType string
	Status       string
	CreatedBy    kernel.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
