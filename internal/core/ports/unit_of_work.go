package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The transition engine relies on the unit of work to commit the conditional
// status write and its audit entry together: a status change whose audit
// append fails is rolled back as a whole.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DocumentRepository returns a DocumentRepository bound to the current transaction.
	// Repository will use the transaction started by Begin().
	DocumentRepository() DocumentRepository

	// AuditLogRepository returns an AuditLogRepository bound to the current transaction.
	// Repository will use the transaction started by Begin().
	AuditLogRepository() AuditLogRepository
}
