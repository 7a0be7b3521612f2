package commands

import (
	"context"

	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"
)

// EditDocumentCommandHandler handles in-place payload edits. The edit guard
// is simpler than transition authorization: the actor needs the edit
// capability and the document must still be in its type's initial status.
type EditDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
	guard      services.WorkflowGuard
}

// NewEditDocumentCommandHandler creates a handler for payload edits.
func NewEditDocumentCommandHandler(
	uowFactory DocumentUoWFactory,
	workflowGuard services.WorkflowGuard,
) EditDocumentCommandHandler {
	return EditDocumentCommandHandler{
		uowFactory: uowFactory,
		guard:      workflowGuard,
	}
}

// Handle processes the edit command. Edits on any non-initial status fail
// with document.ErrDocumentNotEditable; edits are not audited as transitions.
func (h *EditDocumentCommandHandler) Handle(ctx context.Context, cmd EditDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewPersistenceError("begin edit transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	docRepo := uow.DocumentRepository()
	doc, err := docRepo.Get(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	if err = h.guard.AuthorizeEdit(doc, cmd.Actor()); err != nil {
		return err
	}

	if err = doc.EditPayload(cmd.Payload()); err != nil {
		return err
	}

	if err = docRepo.Update(ctx, doc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit edit", err)
	}

	return nil
}
