package commands

import (
	"context"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"
)

// CreateDocumentCommandHandler handles the business logic for document
// creation. Documents always start in their type's initial status; creation
// is audited like any other lifecycle event.
type CreateDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
}

// NewCreateDocumentCommandHandler creates a handler for document creation.
// Requires a DocumentUoWFactory for transactional persistence.
func NewCreateDocumentCommandHandler(uowFactory DocumentUoWFactory) CreateDocumentCommandHandler {
	return CreateDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the document creation command. The actor must hold the
// create capability. The document row and its creation audit entry commit
// together.
func (h *CreateDocumentCommandHandler) Handle(ctx context.Context, cmd CreateDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Capabilities().Has(actor.CapabilityCreate) {
		return fmt.Errorf("%w: role %s does not grant %s",
			services.ErrInsufficientCapability, cmd.Actor().Role(), actor.CapabilityCreate)
	}

	doc, err := document.NewDocument(
		cmd.DocumentID(),
		cmd.DocumentType(),
		cmd.Actor().ID(),
		cmd.ParentJobID(),
		cmd.Payload(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return errs.NewPersistenceError("begin create transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DocumentRepository().Add(ctx, doc); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		cmd.DocumentType(),
		cmd.DocumentID(),
		cmd.Actor().ID(),
		audit.ActionSuccess,
		"",
		doc.Status(),
		"",
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return errs.NewPersistenceError("append audit entry", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit create", err)
	}

	return nil
}
