// Package documentrepo provides data transfer objects and mapping functions for document persistence.
// This package implements the repository pattern for the document domain aggregate, handling
// the conversion between domain entities and database representations.
package documentrepo

import (
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentDTO represents the database structure for persisting document aggregates.
// Maps document domain entities to relational database tables with proper indexing
// for efficient querying by type and workflow status.
type DocumentDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DocumentType string     `gorm:"index:idx_documents_type_status"`
	Status       string     `gorm:"index:idx_documents_type_status"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid"`
	SubmittedBy  *uuid.UUID `gorm:"type:uuid"`
	CheckedBy    *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy   *uuid.UUID `gorm:"type:uuid"`
	ParentJobID  *uuid.UUID `gorm:"type:uuid;index"`
	Payload      datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for document entities.
// Overrides GORM's default naming convention to use "documents".
func (DocumentDTO) TableName() string {
	return "documents"
}

// fromDomain converts a document domain aggregate to its database representation.
// Maps all document attributes including optional step stamps and parent job linkage.
func fromDomain(doc *document.Document) DocumentDTO {
	return DocumentDTO{
		ID:           doc.ID().Bytes(),
		DocumentType: doc.DocumentType().String(),
		Status:       doc.Status().String(),
		CreatedBy:    doc.CreatedBy().Bytes(),
		SubmittedBy:  optionalUUID(doc.SubmittedBy()),
		CheckedBy:    optionalUUID(doc.CheckedBy()),
		ApprovedBy:   optionalUUID(doc.ApprovedBy()),
		ParentJobID:  optionalUUID(doc.ParentJobID()),
		Payload:      datatypes.JSON(doc.Payload()),
		CreatedAt:    doc.CreatedAt(),
		UpdatedAt:    doc.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a document domain aggregate.
// Reconstructs the complete aggregate including step stamps using RestoreDocument.
func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	docType, err := document.TypeFromString(dto.DocumentType)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	submittedBy, err := optionalKernelUUID(dto.SubmittedBy)
	if err != nil {
		return nil, err
	}

	checkedBy, err := optionalKernelUUID(dto.CheckedBy)
	if err != nil {
		return nil, err
	}

	approvedBy, err := optionalKernelUUID(dto.ApprovedBy)
	if err != nil {
		return nil, err
	}

	parentJobID, err := optionalKernelUUID(dto.ParentJobID)
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(
		id,
		docType,
		document.Status(dto.Status),
		createdBy,
		submittedBy, checkedBy, approvedBy, parentJobID,
		[]byte(dto.Payload),
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
