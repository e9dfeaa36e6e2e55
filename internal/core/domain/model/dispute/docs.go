// Package dispute contains the Dispute aggregate: a bounded-party arbitration
// case attached to exactly one order. Two auditors are assigned when the
// dispute opens, the buyer and seller argue their sides into an append-only
// log, and the first resolution recorded by an assigned auditor is binding.
package dispute
