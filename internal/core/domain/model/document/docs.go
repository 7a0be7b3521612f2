// Package document provides the document aggregate and the static transition
// catalog that governs its lifecycle.
//
// Every business document that matters moves through a small explicit status
// lifecycle: who may fire a transition is declared per edge, terminal statuses
// have no outgoing edges, and a document is always constructed in its type's
// initial status. The catalog represents each type's rules as pure data
// consumed by one generic engine, so a new document type is additive table
// data rather than a new code path.
package document
