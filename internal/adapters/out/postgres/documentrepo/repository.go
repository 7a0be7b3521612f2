package documentrepo

import (
	"context"
	"errors"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new document to the database.
func (r *GormDocumentRepository) Add(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing document's payload and timestamps.
// Status changes must go through UpdateStatusIf instead.
func (r *GormDocumentRepository) Update(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DocumentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"payload":    dto.Payload,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a document by ID.
func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DocumentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatusIf writes the aggregate's status, step stamps, and updatedAt,
// guarded by the persisted status still being expectedFrom. A zero
// RowsAffected means another transition won the race; the caller decides
// what to do with the lost race.
func (r *GormDocumentRepository) UpdateStatusIf(
	ctx context.Context,
	aggregate *document.Document,
	expectedFrom document.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DocumentDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedFrom.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"submitted_by": dto.SubmittedBy,
			"checked_by":   dto.CheckedBy,
			"approved_by":  dto.ApprovedBy,
			"updated_at":   dto.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// GetAllInStatus retrieves all documents of a type in the given status.
func (r *GormDocumentRepository) GetAllInStatus(
	ctx context.Context,
	docType document.Type,
	status document.Status,
) ([]*document.Document, error) {
	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "document_type = ? AND status = ?", docType.String(), status.String()).Error
	if err != nil {
		return nil, err
	}

	documents := make([]*document.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}

	return documents, nil
}

// GetExpiredWorkPermits retrieves active work permits whose valid_until
// payload field is earlier than asOf. Permits without a valid_until field
// never expire.
func (r *GormDocumentRepository) GetExpiredWorkPermits(
	ctx context.Context,
	asOf time.Time,
) ([]*document.Document, error) {
	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Where("document_type = ? AND status = ?",
			document.WorkPermit.String(), document.StatusActive.String()).
		Where("payload ->> 'valid_until' IS NOT NULL").
		Where("(payload ->> 'valid_until')::timestamptz < ?", asOf).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	permits := make([]*document.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		permits = append(permits, doc)
	}

	return permits, nil
}
