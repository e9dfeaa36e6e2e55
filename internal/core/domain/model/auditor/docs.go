// Package auditor contains the Auditor aggregate: principals eligible for
// dispute assignment. The pool keeps every record forever; deactivation
// clears a flag rather than deleting, so past assignments stay auditable.
package auditor
