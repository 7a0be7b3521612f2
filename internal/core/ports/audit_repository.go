package ports

import (
	"context"

	"docflow/internal/core/domain/model/audit"
)

// AuditLogRepository defines the persistence contract for the append-only
// audit ledger. Append failures fail the whole transition request: an
// unaudited status change is a compliance violation. Entries are never
// updated or deleted.
//
// Reading the ledger is a query-side concern (see the queries package);
// the write port only appends.
type AuditLogRepository interface {
	// Append durably records one audit entry.
	Append(ctx context.Context, entry audit.Entry) error
}
