// Package auditrepo provides the append-only persistence adapter for the
// audit ledger. Entries are written once and never updated or deleted;
// ordering within a document's history comes from the timestamp and the
// monotonically increasing row id.
package auditrepo

import (
	"time"

	"docflow/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting audit entries.
type EntryDTO struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	DocumentType string    `gorm:"index:idx_audit_document"`
	DocumentID   uuid.UUID `gorm:"type:uuid;index:idx_audit_document"`
	ActorID      uuid.UUID `gorm:"type:uuid"`
	Action       string
	FromStatus   string
	ToStatus     string
	Comment      string
	Timestamp    time.Time
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry value object to its database representation.
// The row id is left zero and assigned by the database on insert.
func fromDomain(entry audit.Entry) EntryDTO {
	return EntryDTO{
		DocumentType: entry.DocumentType().String(),
		DocumentID:   entry.DocumentID().Bytes(),
		ActorID:      entry.ActorID().Bytes(),
		Action:       entry.Action().String(),
		FromStatus:   entry.FromStatus().String(),
		ToStatus:     entry.ToStatus().String(),
		Comment:      entry.Comment(),
		Timestamp:    entry.Timestamp(),
	}
}
