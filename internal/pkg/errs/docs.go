// Package errs provides the typed errors shared by the order service layers.
//
// Each error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - NewXxx and NewXxxWithCause constructors
//
// Not-found results travel up from repositories as *ObjectNotFoundError and are
// turned into absent values by the query and command handlers; they never reach
// the API surface as server errors.
package errs
