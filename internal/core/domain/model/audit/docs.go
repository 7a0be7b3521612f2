// Package audit provides the append-only audit ledger model. Every attempted
// and successful transition is durably recorded; an unaudited status change is
// a compliance violation, not an observability gap, so the engine fails a
// request whose audit entry cannot be appended.
package audit
