package queries

import (
	"context"

	"docflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDocumentsByStatusQueryHandler lists documents of one type sitting in a
// given workflow status. Uses direct SQL queries for optimal read performance
// in the CQRS pattern.
type GetDocumentsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDocumentsByStatusQueryHandler creates a handler for status listing queries.
// Requires a GORM database connection for query execution.
func NewGetDocumentsByStatusQueryHandler(db *gorm.DB) GetDocumentsByStatusQueryHandler {
	return GetDocumentsByStatusQueryHandler{db: db}
}

// Handle executes the query and returns matching documents, oldest first.
func (h GetDocumentsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentsByStatusQuery,
) ([]GetDocumentsByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	documents := make([]GetDocumentsByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			document_type,
			status,
			created_by,
			created_at,
			updated_at
		FROM documents
		WHERE document_type = ? AND status = ?
		ORDER BY created_at
	`, query.DocumentType().String(), query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var doc GetDocumentsByStatusQueryResponse
		var id, createdBy uuid.UUID

		err = rows.Scan(
			&id,
			&doc.DocumentType,
			&doc.Status,
			&createdBy,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		docID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		doc.ID = docID

		creatorID, idErr := kernel.UUIDFromBytes(createdBy[:])
		if idErr != nil {
			return nil, idErr
		}
		doc.CreatedBy = creatorID

		documents = append(documents, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
