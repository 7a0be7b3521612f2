// Package sideeffects executes the declared consequences of committed
// transitions: follow-up notifications and flag propagation to parent job
// records. Effects run after the core status change has committed and are
// reported, never rolled back: a successful transition with a failed side
// effect still succeeds, with the failure logged for out-of-band remediation.
package sideeffects

import (
	"context"
	"fmt"
	"log/slog"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/ports"
)

// Outcome reports the result of executing one side-effect spec.
type Outcome struct {
	// Spec is the declared effect this outcome concerns.
	Spec document.SideEffectSpec

	// Applied is true when the effect changed state. A de-duplicated
	// notification or a skipped flag (no parent job) leaves it false.
	Applied bool

	// Err is the execution failure, nil on success or skip.
	Err error
}

// Dispatcher fires the side effects declared on a transition edge. Each spec
// executes independently: one effect's failure does not block the others.
// De-duplication is keyed by (documentID, edgeID) so that a retried dispatch
// after a partial failure does not double-apply.
type Dispatcher struct {
	notifications ports.NotificationPort
	parentJobs    ports.ParentJobPort
	logger        *slog.Logger
}

// NewDispatcher creates a dispatcher wired to the notification and parent-job
// sinks.
func NewDispatcher(
	notifications ports.NotificationPort,
	parentJobs ports.ParentJobPort,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		parentJobs:    parentJobs,
		logger:        logger.With("component", "side_effect_dispatcher"),
	}
}

// Dispatch executes every side effect declared on the edge, in declaration
// order, against the document the edge was fired on. Failures are collected
// in the returned outcomes and logged; they are not returned as an error
// because the triggering transition has already committed.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	doc *document.Document,
	edge document.TransitionEdge,
) []Outcome {
	outcomes := make([]Outcome, 0, len(edge.SideEffects))

	for _, spec := range edge.SideEffects {
		outcome := d.dispatchOne(ctx, doc, edge, spec)
		if outcome.Err != nil {
			d.logger.ErrorContext(ctx, "Side effect failed",
				"document_id", doc.ID().String(),
				"edge", edge.ID(),
				"effect", string(spec.Kind),
				"error", outcome.Err)
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func (d *Dispatcher) dispatchOne(
	ctx context.Context,
	doc *document.Document,
	edge document.TransitionEdge,
	spec document.SideEffectSpec,
) Outcome {
	switch spec.Kind {
	case document.SideEffectNotify:
		created, err := d.notifications.Enqueue(ctx, ports.Notification{
			DocumentID:   doc.ID(),
			DocumentType: doc.DocumentType(),
			EdgeID:       edge.ID(),
			Message:      spec.Message,
		})
		return Outcome{Spec: spec, Applied: created, Err: err}

	case document.SideEffectPropagateParentFlag:
		jobID := doc.ParentJobID()
		if jobID == nil {
			// Standalone document, nothing to propagate to.
			return Outcome{Spec: spec}
		}
		err := d.parentJobs.SetDocumentCompletedFlag(ctx, *jobID, doc.DocumentType())
		return Outcome{Spec: spec, Applied: err == nil, Err: err}

	default:
		return Outcome{Spec: spec, Err: fmt.Errorf("unknown side effect kind %q", spec.Kind)}
	}
}
