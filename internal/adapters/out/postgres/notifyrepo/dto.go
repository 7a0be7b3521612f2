// Package notifyrepo provides the persistence adapter for follow-up
// notifications. Notifications are stored as an outbox table; a unique key
// on (document_id, edge_id) makes enqueueing idempotent so that a retried
// dispatch never produces a duplicate.
package notifyrepo

import (
	"time"

	"docflow/internal/core/ports"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// follow-up notifications.
type NotificationDTO struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	DocumentID   uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_notifications_document_edge"`
	EdgeID       string    `gorm:"uniqueIndex:uq_notifications_document_edge"`
	DocumentType string
	Message      string
	CreatedAt    time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromPort converts a notification port value to its database representation.
func fromPort(n ports.Notification) NotificationDTO {
	return NotificationDTO{
		DocumentID:   n.DocumentID.Bytes(),
		EdgeID:       n.EdgeID,
		DocumentType: n.DocumentType.String(),
		Message:      n.Message,
		CreatedAt:    time.Now().UTC(),
	}
}
