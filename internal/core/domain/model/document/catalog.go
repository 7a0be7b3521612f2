package document

import (
	"errors"
	"fmt"

	"docflow/internal/core/domain/model/actor"
)

// ErrNoSuchTransition is returned when a requested (from -> to) pair is not an
// edge of the document type's transition table. This includes any transition
// requested out of a terminal status.
var ErrNoSuchTransition = errors.New("no such transition")

// catalog is the static transition table for every document type.
// Declared once at package initialization and never mutated at runtime.
// Adding a document type means adding data here, not new code paths.
var catalog = buildCatalog()

// initialStatuses designates the status every document of a type is
// constructed with. A document is never created in any other status.
var initialStatuses = map[Type]Status{
	DisbursementVoucher: StatusDraft,
	DeliveryNote:        StatusIssued,
	HandoverCertificate: StatusDraft,
	GeneratedDocument:   StatusDraft,
	WorkPermit:          StatusDraft,
}

func buildCatalog() map[Type][]TransitionEdge {
	notify := func(message string) []SideEffectSpec {
		return []SideEffectSpec{{Kind: SideEffectNotify, Message: message}}
	}
	notifyAndFlag := func(message string) []SideEffectSpec {
		return []SideEffectSpec{
			{Kind: SideEffectNotify, Message: message},
			{Kind: SideEffectPropagateParentFlag},
		}
	}

	return map[Type][]TransitionEdge{
		DisbursementVoucher: {
			edge(DisbursementVoucher, StatusDraft, StatusPendingCheck, actor.CapabilitySubmit,
				notify("disbursement voucher awaits check")),
			edge(DisbursementVoucher, StatusPendingCheck, StatusChecked, actor.CapabilityCheck,
				notify("disbursement voucher awaits approval")),
			edge(DisbursementVoucher, StatusPendingCheck, StatusRejected, actor.CapabilityReject,
				notify("disbursement voucher rejected at check")),
			edge(DisbursementVoucher, StatusChecked, StatusApproved, actor.CapabilityApprove,
				notifyAndFlag("disbursement voucher approved")),
			edge(DisbursementVoucher, StatusChecked, StatusRejected, actor.CapabilityReject,
				notify("disbursement voucher rejected at approval")),
		},
		DeliveryNote: {
			edge(DeliveryNote, StatusIssued, StatusInTransit, actor.CapabilitySubmit, nil),
			edge(DeliveryNote, StatusInTransit, StatusDelivered, actor.CapabilityApprove,
				notifyAndFlag("delivery note confirmed delivered")),
			edge(DeliveryNote, StatusInTransit, StatusReturned, actor.CapabilityApprove,
				notify("delivery note returned")),
		},
		HandoverCertificate: {
			edge(HandoverCertificate, StatusDraft, StatusPendingSignature, actor.CapabilitySubmit,
				notify("handover certificate awaits signature")),
			edge(HandoverCertificate, StatusPendingSignature, StatusSigned, actor.CapabilityApprove,
				notifyAndFlag("handover certificate signed")),
			edge(HandoverCertificate, StatusPendingSignature, StatusArchived, actor.CapabilityApprove, nil),
		},
		GeneratedDocument: {
			edge(GeneratedDocument, StatusDraft, StatusFinal, actor.CapabilityApprove, nil),
			edge(GeneratedDocument, StatusDraft, StatusArchived, actor.CapabilityApprove, nil),
			edge(GeneratedDocument, StatusFinal, StatusSent, actor.CapabilitySubmit,
				notify("generated document sent to counterparty")),
			edge(GeneratedDocument, StatusFinal, StatusArchived, actor.CapabilityApprove, nil),
			edge(GeneratedDocument, StatusSent, StatusArchived, actor.CapabilityApprove, nil),
		},
		WorkPermit: {
			edge(WorkPermit, StatusDraft, StatusPendingApproval, actor.CapabilitySubmit,
				notify("work permit awaits approval")),
			edge(WorkPermit, StatusPendingApproval, StatusActive, actor.CapabilityApprove,
				notify("work permit activated")),
			edge(WorkPermit, StatusPendingApproval, StatusRejected, actor.CapabilityReject,
				notify("work permit rejected")),
			edge(WorkPermit, StatusActive, StatusClosed, actor.CapabilityApprove,
				notifyAndFlag("work permit closed")),
		},
	}
}

func edge(t Type, from, to Status, capability actor.Capability, effects []SideEffectSpec) TransitionEdge {
	return TransitionEdge{
		DocumentType:       t,
		From:               from,
		To:                 to,
		RequiredCapability: capability,
		SideEffects:        effects,
	}
}

// EdgesFor returns the edges leaving the given status for a document type.
// A terminal status has no edges. The returned slice is a copy; callers may
// not mutate catalog data.
func EdgesFor(docType Type, from Status) []TransitionEdge {
	var out []TransitionEdge
	for _, e := range catalog[docType] {
		if e.From == from {
			out = append(out, e)
		}
	}
	return out
}

// FindEdge looks up the edge (docType, from, to).
// Returns ErrNoSuchTransition if the pair is not in the type's table.
func FindEdge(docType Type, from, to Status) (TransitionEdge, error) {
	for _, e := range catalog[docType] {
		if e.From == from && e.To == to {
			return e, nil
		}
	}
	return TransitionEdge{}, fmt.Errorf("%w: %s has no edge %s -> %s",
		ErrNoSuchTransition, docType, from, to)
}

// IsTerminal reports whether the status has no outgoing edges for the type.
func IsTerminal(docType Type, status Status) bool {
	return len(EdgesFor(docType, status)) == 0
}

// InitialStatus returns the designated initial status for the document type.
// An unknown type is a programming error; callers validate the type first.
func InitialStatus(docType Type) Status {
	return initialStatuses[docType]
}

// StatusesFor returns the full status set of a document type: the initial
// status plus every status reachable through the type's edges, in stable
// order (initial first, then edge declaration order).
func StatusesFor(docType Type) []Status {
	seen := make(map[Status]struct{})
	var out []Status
	add := func(s Status) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	if initial, ok := initialStatuses[docType]; ok {
		add(initial)
	}
	for _, e := range catalog[docType] {
		add(e.From)
		add(e.To)
	}
	return out
}
