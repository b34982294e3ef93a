// Package errs provides the typed error family shared by every layer of the
// food delivery service.
//
// Each error kind follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - A struct type carrying the details needed to build a client message
//   - Constructor functions, with and without a cause where a cause makes sense
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The kinds map onto the failure taxonomy the HTTP boundary reports:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failure
//   - ObjectNotFoundError: unknown identifier
//   - ForbiddenError: authenticated actor, foreign resource
//   - IllegalTransitionError: right actor, wrong current state
//   - DuplicateFieldError: unique field collision
//   - VersionIsInvalidError: optimistic lock lost to a concurrent writer
//   - ErrUnauthenticated and the errors wrapping it: any authentication failure
package errs
