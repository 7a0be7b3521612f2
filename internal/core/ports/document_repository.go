// Package ports defines repository interfaces for the docflow domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for document aggregates.
// The engine requires only that UpdateStatusIf be atomic per document id;
// beyond that it is agnostic to the concrete store.
type DocumentRepository interface {
	// Add persists a new document aggregate to storage.
	// The document must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *document.Document) error

	// Update persists the document's payload and timestamps.
	// Used for in-place edits only; status changes go through UpdateStatusIf.
	Update(ctx context.Context, aggregate *document.Document) error

	// Get retrieves a document aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// UpdateStatusIf performs the conditional status write of the transition
	// engine: it persists the aggregate's status, step stamps, and updatedAt,
	// but only if the persisted status still equals expectedFrom. It is the
	// compare-and-swap that resolves concurrent transitions on the same
	// document.
	//
	// Returns:
	//   - (true, nil) if the row was written
	//   - (false, nil) if another transition won the race (no row changed)
	//   - (false, err) on storage failure
	UpdateStatusIf(ctx context.Context, aggregate *document.Document, expectedFrom document.Status) (bool, error)

	// GetAllInStatus retrieves all documents of a type in the given status.
	// Used by read surfaces and by batch sweeps that feed documents back
	// through the transition contract.
	GetAllInStatus(ctx context.Context, docType document.Type, status document.Status) ([]*document.Document, error)

	// GetExpiredWorkPermits retrieves active work permits whose validity
	// window ended before asOf. The expiry sweep closes each one through the
	// ordinary transition contract, one document at a time.
	GetExpiredWorkPermits(ctx context.Context, asOf time.Time) ([]*document.Document, error)
}
