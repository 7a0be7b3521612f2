package actor

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Role represents the workflow role a principal acts under. The role used for
// capability resolution is the effective role supplied by the caller, which
// may differ from the principal's persisted role (session preview and
// impersonation swap it per request).
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleMaker creates and submits documents and may edit them in place
	// while they remain in their initial status.
	RoleMaker

	// RoleChecker performs the intermediate check of the
	// maker-checker-approver flow.
	RoleChecker

	// RoleApprover gives final approval on documents.
	RoleApprover

	// RoleDirector holds the same workflow capabilities as an approver.
	RoleDirector

	// RoleOwner holds the same workflow capabilities as an approver.
	RoleOwner

	// RoleViewer holds no workflow capabilities.
	RoleViewer
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleMaker:    "maker",
		RoleChecker:  "checker",
		RoleApprover: "approver",
		RoleDirector: "director",
		RoleOwner:    "owner",
		RoleViewer:   "viewer",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation and parsing.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleMaker:    "maker",
		RoleChecker:  "checker",
		RoleApprover: "approver",
		RoleDirector: "director",
		RoleOwner:    "owner",
		RoleViewer:   "viewer",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns an error if the string does not name a known role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// Validate checks if the Role value is valid.
//
// Returns:
//   - nil if the role is valid
//   - error with details if the role is invalid
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Returns "unknown" for invalid role values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
