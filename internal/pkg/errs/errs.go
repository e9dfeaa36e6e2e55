package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every concrete error
// type in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrAuthorizationFailed  = errors.New("caller is not authorized")
	ErrInvalidState         = errors.New("operation is not valid in the current state")
	ErrInsufficientAuditors = errors.New("not enough active auditors")
)

// sanitize strips newlines from values interpolated into error messages so a
// single error always renders as a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object with the given identifier does
// not exist in the consulted store.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-layer error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %s", e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or violates
// a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure that triggered it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %s", e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value violates its bounds.
// It also covers arithmetic overflow, where the computed value would exceed
// the representable maximum.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v (cause: %s)",
			e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a mandatory value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is required: %s", e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AuthorizationError indicates that the caller does not hold the relationship
// an operation requires on its target. It is raised before any state checks,
// so an unauthorized caller learns nothing about the target's current state.
type AuthorizationError struct {
	// Relationship is the relationship the operation requires, e.g. "buyer".
	Relationship string
	// Principal identifies the rejected caller.
	Principal any
	Cause     error
}

// NewAuthorizationError creates an AuthorizationError for a caller lacking the
// given relationship.
func NewAuthorizationError(relationship string, principal any) *AuthorizationError {
	return &AuthorizationError{Relationship: relationship, Principal: principal}
}

// NewAuthorizationErrorWithCause creates an AuthorizationError wrapping an
// underlying cause.
func NewAuthorizationErrorWithCause(relationship string, principal any, cause error) *AuthorizationError {
	return &AuthorizationError{Relationship: relationship, Principal: principal, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("caller is not authorized: %s is not %s (cause: %s)",
			e.Principal, e.Relationship, e.Cause))
	}
	return sanitize(fmt.Sprintf("caller is not authorized: %s is not %s", e.Principal, e.Relationship))
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorizationFailed
}

// InvalidStateError indicates that an operation is not legal for the target's
// current lifecycle state.
type InvalidStateError struct {
	// Operation is the rejected operation, e.g. "confirm order".
	Operation string
	// State is the target's current state.
	State any
	Cause error
}

// NewInvalidStateError creates an InvalidStateError for an operation rejected
// in the given state.
func NewInvalidStateError(operation string, state any) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying cause.
func NewInvalidStateErrorWithCause(operation string, state any, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("invalid state: cannot %s while %v (cause: %s)",
			e.Operation, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("invalid state: cannot %s while %v", e.Operation, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InsufficientAuditorsError indicates that a dispute could not be staffed
// because the pool holds fewer active auditors than an assignment requires.
type InsufficientAuditorsError struct {
	Active   int
	Required int
}

// NewInsufficientAuditorsError creates an InsufficientAuditorsError reporting
// the available and required auditor counts.
func NewInsufficientAuditorsError(active, required int) *InsufficientAuditorsError {
	return &InsufficientAuditorsError{Active: active, Required: required}
}

func (e *InsufficientAuditorsError) Error() string {
	return fmt.Sprintf("not enough active auditors: %d active, %d required", e.Active, e.Required)
}

func (e *InsufficientAuditorsError) Unwrap() error {
	return ErrInsufficientAuditors
}
