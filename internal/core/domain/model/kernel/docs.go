// Package kernel holds the value objects shared by every aggregate of the
// food delivery domain.
//
// The package includes:
//   - UUID: identifier of users, orders, order lines and menu items
//   - Money: non-negative amount in minor units, used for prices and order totals
package kernel
