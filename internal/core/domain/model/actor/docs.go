// Package actor provides the principal model for workflow authorization.
// It implements roles, capabilities, and the derivation of capability sets
// from effective roles.
//
// The package includes:
//   - Actor: A value object pairing a principal's identity with its effective role
//   - Role: The closed set of workflow roles
//   - Capability: The closed set of workflow permissions
//   - CapabilitiesOf: The role-to-capability derivation, recomputed per request
//
// Capability resolution is deliberately stateless: effective roles can be
// swapped per session (preview, impersonation), so nothing in this package
// caches a derivation across calls.
package actor
