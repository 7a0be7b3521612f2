// Package jobrepo provides the persistence adapter for parent job flags.
// A flag row records that a document of a given type reached a completing
// status within its parent job. Setting a flag twice is a no-op.
package jobrepo

import (
	"time"

	"github.com/google/uuid"
)

// JobFlagDTO represents the database structure for parent job completion flags.
type JobFlagDTO struct {
	JobID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentType string    `gorm:"primaryKey"`
	CompletedAt  time.Time
}

// TableName specifies the database table name for job flags.
func (JobFlagDTO) TableName() string {
	return "job_document_flags"
}
