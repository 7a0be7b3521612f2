// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the docflow system. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - WorkflowGuard: authorization of document transitions and in-place edits,
//     combining catalog lookup, capability resolution, and segregation of duties
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
