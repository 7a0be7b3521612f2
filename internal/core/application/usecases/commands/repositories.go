// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"docflow/internal/core/application/sideeffects"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// AuditRepoFactory provides access to the audit ledger within a transaction.
	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// DocumentUoW manages transactions spanning the document aggregate and
	// its audit ledger. Every workflow command uses this unit of work: the
	// conditional status write and its audit entry must commit together.
	DocumentUoW interface {
		TxManager
		DocumentRepoFactory
		AuditRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}
)

// SideEffectDispatcher fires the side effects declared on a committed edge.
// Implemented by sideeffects.Dispatcher; abstracted here so handlers can be
// tested without the concrete sinks.
type SideEffectDispatcher interface {
	Dispatch(ctx context.Context, doc *document.Document, edge document.TransitionEdge) []sideeffects.Outcome
}
