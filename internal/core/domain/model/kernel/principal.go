package kernel

import (
	"encoding/json"

	"github.com/sTingley/ProcurementOrderManager/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrPrincipalIDIsNotConstructed indicates that a PrincipalID was not produced
// by one of the constructor functions. The zero value is invalid on purpose:
// an empty principal must never pass an authorization check.
var ErrPrincipalIDIsNotConstructed = errs.NewValueIsRequiredError(
	"PrincipalID must be created via NewPrincipalID, PrincipalIDFromString, or PrincipalIDFromBytes",
)

// PrincipalID is the opaque identifier of a caller. It wraps a UUID to stay
// comparable and immutable while carrying no authentication semantics of its
// own: whoever hands us a PrincipalID has already authenticated it.
//
// PrincipalID is a value object: it is compared by value, safe to copy and
// safe for concurrent use.
type PrincipalID struct {
	value uuid.UUID
}

// NewPrincipalID creates a new random PrincipalID. Used by tests and by
// tooling that provisions principals; production identifiers normally arrive
// from the outside via PrincipalIDFromString.
func NewPrincipalID() PrincipalID {
	return PrincipalID{value: uuid.New()}
}

// PrincipalIDFromString parses the canonical string form of a principal
// identifier, e.g. the value of an X-Principal-Id header.
func PrincipalIDFromString(s string) (PrincipalID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return PrincipalID{}, errs.NewValueIsInvalidErrorWithCause("principalId", err)
	}
	return PrincipalID{value: parsed}, nil
}

// PrincipalIDFromBytes restores a PrincipalID from its 16-byte representation,
// used when rehydrating aggregates from storage.
func PrincipalIDFromBytes(b []byte) (PrincipalID, error) {
	parsed, err := uuid.FromBytes(b)
	if err != nil {
		return PrincipalID{}, errs.NewValueIsInvalidErrorWithCause("principalId", err)
	}
	return PrincipalID{value: parsed}, nil
}

// Validate reports whether the PrincipalID was properly constructed.
// The zero value fails with ErrPrincipalIDIsNotConstructed.
func (p PrincipalID) Validate() error {
	if p.value == uuid.Nil {
		return ErrPrincipalIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two principal identifiers by value.
func (p PrincipalID) IsEqual(other PrincipalID) bool {
	return p.value == other.value
}

// String returns the canonical string form of the identifier.
func (p PrincipalID) String() string {
	return p.value.String()
}

// Bytes returns the underlying UUID, used by the persistence layer.
func (p PrincipalID) Bytes() uuid.UUID {
	return p.value
}

// MarshalJSON encodes the identifier in its canonical string form, so events
// and API payloads carry the same representation callers authenticate with.
func (p PrincipalID) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value.String())
}

// UnmarshalJSON decodes the canonical string form.
func (p *PrincipalID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := PrincipalIDFromString(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
