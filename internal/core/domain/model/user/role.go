package user

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Role is the single role a user holds for the lifetime of its sessions.
type Role int

const (
	// UnknownRole (0) catches uninitialized Role values.
	UnknownRole Role = iota
	Client
	Restaurant
	Courier
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Client:      "CLIENT",
		Restaurant:  "RESTAURANT",
		Courier:     "COURIER",
		Admin:       "ADMIN",
	}
}

// ParseRole maps the wire name (case-insensitive) to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && strings.EqualFold(name, strings.TrimSpace(s)) {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects UnknownRole and values outside the enum.
func (r Role) Validate() error {
	if r <= UnknownRole || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name, e.g. "COURIER".
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// CanSelfRegister reports whether the role is open to public registration.
// Administrators are provisioned from configuration only.
func (r Role) CanSelfRegister() bool {
	return r == Client || r == Restaurant || r == Courier
}
