package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Accepted ──> Prepared ──> Delivering ──> Completed
//	   │
//	   └──> Deleted
//
// The chain is strictly linear: no state is revisited and none is skipped.
// A courier may attach while the order is Created, Accepted or Prepared;
// attaching does not change the status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Created
	Accepted
	Prepared
	Delivering
	Completed
	Deleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		Accepted:   "ACCEPTED",
		Prepared:   "PREPARED",
		Delivering: "DELIVERING",
		Completed:  "COMPLETED",
		Deleted:    "DELETED",
	}
}

// getStatusDescriptions is the wording used in transition errors,
// e.g. "order is already being delivered".
func getStatusDescriptions() map[Status]string {
	//nolint:exhaustive // Unknown is never described
	return map[Status]string{
		Created:    "created",
		Accepted:   "accepted",
		Prepared:   "prepared",
		Delivering: "being delivered",
		Completed:  "completed",
		Deleted:    "deleted",
	}
}

// ParseStatus maps the wire name (case-insensitive) to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and values outside the enum.
func (s Status) Validate() error {
	if s <= Unknown || s > Deleted {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, e.g. "DELIVERING".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Deleted
}

// IsOpenForCourier reports whether a courier may still attach.
func (s Status) IsOpenForCourier() bool {
	return s == Created || s == Accepted || s == Prepared
}

func (s Status) describe() string {
	if d, ok := getStatusDescriptions()[s]; ok {
		return d
	}
	return strings.ToLower(s.String())
}

// ValidateCanHaveCourier checks status and courier assignment for consistency.
//
// Business Rules:
//   - Delivering and Completed orders must have a courier
//   - Created, Accepted and Prepared orders may have one (a courier took the delivery early)
//   - Deleted orders keep whatever courier they had when deleted
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if !courier && (s == Delivering || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}
