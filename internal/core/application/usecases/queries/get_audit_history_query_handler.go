package queries

import (
	"context"

	"docflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditHistoryQueryHandler reads one document's audit trail from the ledger.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAuditHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditHistoryQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetAuditHistoryQueryHandler(db *gorm.DB) GetAuditHistoryQueryHandler {
	return GetAuditHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the document's audit entries,
// chronological, oldest first. Ties on timestamp keep insertion order.
func (h GetAuditHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetAuditHistoryQuery,
) ([]GetAuditHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetAuditHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			document_type,
			document_id,
			actor_id,
			action,
			from_status,
			to_status,
			comment,
			timestamp
		FROM audit_entries
		WHERE document_type = ? AND document_id = ?
		ORDER BY timestamp, id
	`, query.DocumentType().String(), query.DocumentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAuditHistoryQueryResponse
		var documentID, actorID uuid.UUID

		err = rows.Scan(
			&entry.DocumentType,
			&documentID,
			&actorID,
			&entry.Action,
			&entry.FromStatus,
			&entry.ToStatus,
			&entry.Comment,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		docID, idErr := kernel.UUIDFromBytes(documentID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.DocumentID = docID

		actID, idErr := kernel.UUIDFromBytes(actorID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ActorID = actID

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
