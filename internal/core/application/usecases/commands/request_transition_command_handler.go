package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"
)

// ErrStaleState is returned when the caller's observed status no longer
// matches the persisted one, either on the initial read or because a
// concurrent transition won the conditional write. It is the only failure a
// caller may legitimately retry, after re-reading the current status; the
// engine itself never retries.
var ErrStaleState = errors.New("stale state")

// RequestTransitionCommandHandler is the transition executor: it authorizes
// the requested edge, performs the optimistic-concurrency-protected status
// write, appends the audit entry in the same transaction, and fires the
// edge's side effects after commit.
//
// Failure semantics follow the workflow error taxonomy: catalog and
// authorization denials are caller errors audited as reject; ErrStaleState
// marks a lost race audited as attempt; storage failures surface as
// errs.ErrPersistence and leave no partial state behind.
type RequestTransitionCommandHandler struct {
	uowFactory DocumentUoWFactory
	guard      services.WorkflowGuard
	dispatcher SideEffectDispatcher
}

// NewRequestTransitionCommandHandler creates the transition executor.
// Requires a DocumentUoWFactory for transactional persistence and a
// dispatcher for post-commit side effects.
func NewRequestTransitionCommandHandler(
	uowFactory DocumentUoWFactory,
	workflowGuard services.WorkflowGuard,
	dispatcher SideEffectDispatcher,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		guard:      workflowGuard,
		dispatcher: dispatcher,
	}
}

// Handle processes one transition request and returns the document's new
// status on success. Every call, successful or not, appends exactly one
// audit entry; the entry and the status change commit together.
func (h *RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestTransitionCommand,
) (document.Status, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", errs.NewPersistenceError("begin transition transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	docRepo := uow.DocumentRepository()
	doc, err := docRepo.Get(ctx, cmd.DocumentID())
	if err != nil {
		return "", err
	}

	if doc.DocumentType() != cmd.DocumentType() {
		return "", errs.NewValueIsInvalidErrorWithCause("documentType",
			fmt.Errorf("document %s is a %s, not a %s",
				cmd.DocumentID(), doc.DocumentType(), cmd.DocumentType()))
	}

	// The caller acted on an outdated read; nothing to race against yet.
	if doc.Status() != cmd.ExpectedFrom() {
		return "", h.finishStale(ctx, uow, cmd)
	}

	edge, authErr := h.guard.Authorize(
		cmd.DocumentType(), cmd.ExpectedFrom(), cmd.To(), cmd.Actor(), doc.CreatedBy())
	if authErr != nil {
		return "", h.finishRejected(ctx, uow, cmd, authErr)
	}

	if err = doc.ApplyEdge(edge, cmd.Actor()); err != nil {
		return "", err
	}

	written, err := docRepo.UpdateStatusIf(ctx, doc, cmd.ExpectedFrom())
	if err != nil {
		return "", errs.NewPersistenceError("conditional status write", err)
	}
	if !written {
		// A concurrent transition won between our read and our write.
		return "", h.finishStale(ctx, uow, cmd)
	}

	if err = h.appendAudit(ctx, uow, cmd, audit.ActionSuccess); err != nil {
		// The audit entry is load-bearing: rolling back also reverts the
		// just-performed status write, so the document stays unambiguous.
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", errs.NewPersistenceError("commit transition", err)
	}

	// The transition is durable; effects are fire-and-report from here.
	h.dispatcher.Dispatch(ctx, doc, edge)

	return doc.Status(), nil
}

// finishStale records the lost race in the audit ledger and returns
// ErrStaleState. Only the audit entry is committed.
func (h *RequestTransitionCommandHandler) finishStale(
	ctx context.Context,
	uow DocumentUoW,
	cmd RequestTransitionCommand,
) error {
	if err := h.appendAudit(ctx, uow, cmd, audit.ActionAttempt); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit audit entry", err)
	}
	return fmt.Errorf("%w: document %s is no longer in %s",
		ErrStaleState, cmd.DocumentID(), cmd.ExpectedFrom())
}

// finishRejected records the guard denial in the audit ledger and returns
// the denial unchanged. The document is not mutated.
func (h *RequestTransitionCommandHandler) finishRejected(
	ctx context.Context,
	uow DocumentUoW,
	cmd RequestTransitionCommand,
	denial error,
) error {
	if err := h.appendAudit(ctx, uow, cmd, audit.ActionReject); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit audit entry", err)
	}
	return denial
}

func (h *RequestTransitionCommandHandler) appendAudit(
	ctx context.Context,
	uow DocumentUoW,
	cmd RequestTransitionCommand,
	action audit.Action,
) error {
	entry, err := audit.NewEntry(
		cmd.DocumentType(),
		cmd.DocumentID(),
		cmd.Actor().ID(),
		action,
		cmd.ExpectedFrom(),
		cmd.To(),
		cmd.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return errs.NewPersistenceError("append audit entry", err)
	}
	return nil
}
