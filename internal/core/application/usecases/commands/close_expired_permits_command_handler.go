package commands

import (
	"context"
	"errors"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/document"
)

// permitCloseComment is recorded on the audit entry of every sweep closure.
const permitCloseComment = "validity window expired"

// CloseExpiredPermitsCommandHandler sweeps active work permits past their
// validity window and closes each through the transition executor. Each permit
// is its own transition request with its own transaction: a permit that a
// human closes mid-sweep simply loses the race and is skipped.
type CloseExpiredPermitsCommandHandler struct {
	uowFactory  DocumentUoWFactory
	transitions *RequestTransitionCommandHandler
	systemActor actor.Actor
}

// NewCloseExpiredPermitsCommandHandler creates a handler for the expiry sweep.
// The system actor must carry a role with the approve capability, since
// active -> closed is an approval edge.
func NewCloseExpiredPermitsCommandHandler(
	uowFactory DocumentUoWFactory,
	transitions *RequestTransitionCommandHandler,
	systemActor actor.Actor,
) CloseExpiredPermitsCommandHandler {
	return CloseExpiredPermitsCommandHandler{
		uowFactory:  uowFactory,
		transitions: transitions,
		systemActor: systemActor,
	}
}

// Handle finds all expired active permits and requests active -> closed for
// each. Lost races are expected and skipped silently; the first persistence
// failure aborts the sweep and is returned.
func (h *CloseExpiredPermitsCommandHandler) Handle(ctx context.Context, cmd CloseExpiredPermitsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	permits, err := uow.DocumentRepository().GetExpiredWorkPermits(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	for _, permit := range permits {
		transitionCmd, cmdErr := NewRequestTransitionCommand(
			document.WorkPermit,
			permit.ID(),
			document.StatusActive,
			document.StatusClosed,
			h.systemActor,
			permitCloseComment,
		)
		if cmdErr != nil {
			return cmdErr
		}

		if _, err = h.transitions.Handle(ctx, transitionCmd); err != nil {
			// Someone moved the permit first; it no longer needs closing.
			if errors.Is(err, ErrStaleState) {
				continue
			}
			return err
		}
	}

	return nil
}
