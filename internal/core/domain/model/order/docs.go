// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order binds a buyer and a seller to a list of line items under agreed
// delivery terms. The aggregate enforces which status transitions are legal;
// it deliberately knows nothing about who is allowed to request a transition.
// That authorization question is tied to per-order relationships (buyer,
// seller, assigned auditor) and is answered centrally in the application
// layer before any aggregate method is invoked.
package order
