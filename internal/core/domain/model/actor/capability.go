package actor

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Capability is a single workflow permission. Transition edges declare the
// capability required to fire them; roles map to capability sets.
type Capability int

const (
	// CapabilityUnknown represents an invalid or undefined capability.
	CapabilityUnknown Capability = iota

	// CapabilityCreate permits creating a document in its initial status.
	CapabilityCreate

	// CapabilitySubmit permits moving a document out of an early status
	// toward review (submit for check, issue for transit, send).
	CapabilitySubmit

	// CapabilityCheck permits the intermediate check step.
	CapabilityCheck

	// CapabilityApprove permits final approval and archival steps.
	CapabilityApprove

	// CapabilityReject permits sending a document to a rejected status.
	CapabilityReject

	// CapabilityEdit permits in-place payload edits while a document
	// remains in its initial status.
	CapabilityEdit
)

// getCapabilityStrings returns a map of Capability values to their string
// representations. All capabilities are included for string conversion.
func getCapabilityStrings() map[Capability]string {
	return map[Capability]string{
		CapabilityUnknown: "unknown",
		CapabilityCreate:  "create",
		CapabilitySubmit:  "submit",
		CapabilityCheck:   "check",
		CapabilityApprove: "approve",
		CapabilityReject:  "reject",
		CapabilityEdit:    "edit",
	}
}

// Validate checks if the Capability value is valid.
func (c Capability) Validate() error {
	if c == CapabilityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("capability",
			fmt.Errorf("%d is not a valid capability", c))
	}
	if _, ok := getCapabilityStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("capability",
			fmt.Errorf("%d is not a valid capability", c))
	}
	return nil
}

// String returns the human-readable name of the capability.
// Returns "unknown" for invalid capability values.
func (c Capability) String() string {
	if str, ok := getCapabilityStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Capabilities is the set of workflow permissions an actor holds.
type Capabilities map[Capability]struct{}

// Has reports whether the set contains the given capability.
func (cs Capabilities) Has(c Capability) bool {
	_, ok := cs[c]
	return ok
}

// CapabilitiesOf derives the capability set for a role.
//
// Derivation rules:
//   - maker: create, submit, edit
//   - checker: check, reject
//   - approver, director, owner: approve, reject
//   - viewer: none
//
// The set is computed fresh on every call and never cached on the actor,
// because the effective role can change between requests (session preview,
// impersonation) independent of the persisted role.
func CapabilitiesOf(role Role) Capabilities {
	switch role {
	case RoleMaker:
		return Capabilities{
			CapabilityCreate: {},
			CapabilitySubmit: {},
			CapabilityEdit:   {},
		}
	case RoleChecker:
		return Capabilities{
			CapabilityCheck:  {},
			CapabilityReject: {},
		}
	case RoleApprover, RoleDirector, RoleOwner:
		return Capabilities{
			CapabilityApprove: {},
			CapabilityReject:  {},
		}
	case RoleViewer, RoleUnknown:
		return Capabilities{}
	default:
		return Capabilities{}
	}
}
