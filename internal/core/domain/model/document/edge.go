package document

import (
	"fmt"

	"docflow/internal/core/domain/model/actor"
)

// SideEffectKind names a declared consequence of a successful transition.
type SideEffectKind string

const (
	// SideEffectNotify enqueues a follow-up notification for the document's
	// stakeholders (e.g., "voucher awaits your check").
	SideEffectNotify SideEffectKind = "notify"

	// SideEffectPropagateParentFlag sets a completion flag on the parent
	// job record the document belongs to.
	SideEffectPropagateParentFlag SideEffectKind = "propagate-parent-flag"
)

// SideEffectSpec declares one consequence of firing an edge. Specs are static
// data on the catalog; their execution is the dispatcher's concern.
type SideEffectSpec struct {
	// Kind selects the effect executor.
	Kind SideEffectKind

	// Message is the notification template for SideEffectNotify.
	// Empty for other kinds.
	Message string
}

// TransitionEdge is one legal (from -> to) transition of a document type,
// together with the capability required to fire it and the side effects
// declared on it. Edges are static catalog data, immutable at runtime.
type TransitionEdge struct {
	DocumentType       Type
	From               Status
	To                 Status
	RequiredCapability actor.Capability
	SideEffects        []SideEffectSpec
}

// ID returns a stable identifier for the edge, used to de-duplicate side
// effect dispatches per (document, edge).
func (e TransitionEdge) ID() string {
	return fmt.Sprintf("%s:%s>%s", e.DocumentType, e.From, e.To)
}
