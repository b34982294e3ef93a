// Package order provides the Order aggregate and the state machine that
// governs who may move an order between statuses.
//
// The package includes:
//   - Order: the aggregate root owning its items, price snapshot and courier assignment
//   - Item: an immutable order line with a frozen price
//   - Status: the linear lifecycle Created -> Accepted -> Prepared -> Delivering -> Completed, plus Deleted
//   - Action and Apply: one transition table shared by every actor surface
//   - OverridePatch and Override: the administrative bypass of the table
//
// Key business rules:
//   - ownership is checked before state, so a stranger learns nothing about an order's progress
//   - the first courier to take an unassigned order wins; later attempts fail with IllegalTransition
//   - only the assigned courier may pick up and deliver
//   - a client may delete its order only while it is Created and has no courier
package order
