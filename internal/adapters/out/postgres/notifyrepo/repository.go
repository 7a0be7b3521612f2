package notifyrepo

import (
	"context"

	"docflow/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationRepository implements NotificationPort using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification outbox repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Enqueue records the notification for out-of-band delivery. The insert
// relies on the (document_id, edge_id) unique key: a conflicting row is
// silently skipped and Enqueue reports created=false.
func (r *GormNotificationRepository) Enqueue(ctx context.Context, n ports.Notification) (bool, error) {
	if err := n.DocumentID.Validate(); err != nil {
		return false, err
	}

	dto := fromPort(n)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "document_id"}, {Name: "edge_id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
