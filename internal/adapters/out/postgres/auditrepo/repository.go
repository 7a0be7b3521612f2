package auditrepo

import (
	"context"

	"docflow/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
// The ledger is append-only: the adapter exposes no update or delete path.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GORM audit ledger repository.
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append durably records one audit entry.
func (r *GormAuditLogRepository) Append(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
