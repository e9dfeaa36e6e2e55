// Package services contains domain services: logic that spans aggregates and
// therefore belongs to none of them. AccessPolicy answers who a caller is in
// relation to an order, AuditorAssigner decides which auditors arbitrate a
// new dispute.
package services
