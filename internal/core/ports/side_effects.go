package ports

import (
	"context"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
)

// Notification is a follow-up task enqueued as a side effect of a committed
// transition. The (DocumentID, EdgeID) pair is the de-duplication key: a
// retried dispatch must not produce a second notification for the same
// transition.
type Notification struct {
	DocumentID   kernel.UUID
	DocumentType document.Type
	EdgeID       string
	Message      string
}

// NotificationPort is the sink for follow-up notifications. The engine does
// not know how notifications are delivered; it only enqueues them.
type NotificationPort interface {
	// Enqueue records the notification for out-of-band delivery.
	// Returns false without error when a notification with the same
	// (DocumentID, EdgeID) key already exists.
	Enqueue(ctx context.Context, n Notification) (bool, error)
}

// ParentJobPort is the sink for flag propagation to parent job records.
// Setting a flag is naturally idempotent.
type ParentJobPort interface {
	// SetDocumentCompletedFlag marks on the parent job record that a
	// document of the given type reached a completing status.
	SetDocumentCompletedFlag(ctx context.Context, jobID kernel.UUID, docType document.Type) error
}
