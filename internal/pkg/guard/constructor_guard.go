// Package guard provides ConstructorGuard, a zero-size marker that lets value
// objects, commands and queries tell a constructed instance from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be built by their
// constructor. The zero value reports "not constructed".
//
// Example:
//
//	var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand")
//
//	type LoginCommand struct {
//	    email    string
//	    password string
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c LoginCommand) Validate() error {
//	    return c.guard.Validate(ErrLoginCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
