package audit

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Action classifies what an audit entry records about a transition request.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionAttempt records a transition request that was authorized but not
	// applied, because a concurrent transition won the race on the document.
	ActionAttempt

	// ActionSuccess records a committed status change (or document creation).
	ActionSuccess

	// ActionReject records a transition request denied by the workflow guard.
	ActionReject
)

// getActionStrings returns a map of Action values to their string representations.
func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown: "unknown",
		ActionAttempt: "attempt",
		ActionSuccess: "success",
		ActionReject:  "reject",
	}
}

// getValidActionStrings returns a map of only valid Action values.
func getValidActionStrings() map[Action]string {
	//nolint:exhaustive // ActionUnknown is intentionally excluded as it's invalid
	return map[Action]string{
		ActionAttempt: "attempt",
		ActionSuccess: "success",
		ActionReject:  "reject",
	}
}

// ActionFromString parses an action from its persisted representation.
func ActionFromString(s string) (Action, error) {
	for action, str := range getValidActionStrings() {
		if str == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a known audit action", s))
}

// Validate checks if the Action value is valid.
func (a Action) Validate() error {
	if _, ok := getValidActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid audit action", a))
	}
	return nil
}

// String returns the persisted representation of the action.
// Returns "unknown" for invalid action values.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
