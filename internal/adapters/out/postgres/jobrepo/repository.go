package jobrepo

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParentJobRepository implements ParentJobPort using GORM.
type GormParentJobRepository struct {
	db *gorm.DB
}

// NewGormParentJobRepository creates a new GORM parent job flag repository.
func NewGormParentJobRepository(db *gorm.DB) *GormParentJobRepository {
	return &GormParentJobRepository{db: db}
}

// SetDocumentCompletedFlag marks on the parent job record that a document of
// the given type reached a completing status. The composite primary key makes
// repeated calls for the same (job, type) pair a no-op.
func (r *GormParentJobRepository) SetDocumentCompletedFlag(
	ctx context.Context,
	jobID kernel.UUID,
	docType document.Type,
) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	if err := docType.Validate(); err != nil {
		return err
	}

	dto := JobFlagDTO{
		JobID:        jobID.Bytes(),
		DocumentType: docType.String(),
		CompletedAt:  time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
