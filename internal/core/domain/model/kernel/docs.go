// Package kernel contains shared value objects used across the domain model.
//
// Its centerpiece is PrincipalID, the opaque identity of a caller (buyer,
// seller, auditor or admin). Authentication happens outside this system:
// callers arrive pre-authenticated and the domain only ever compares
// principal identifiers, never inspects them.
package kernel
