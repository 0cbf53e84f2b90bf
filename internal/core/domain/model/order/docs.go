// Package order provides domain entities and business logic for cafe orders.
// It implements the Order aggregate root, its item lines and the rules that
// derive a customer-facing status label from the order's timestamps.
//
// The package includes:
//   - Order: The aggregate root holding id, item lines, placement and ready times
//   - Line: One (menu item id, quantity) pair of an order
//   - Status: The label derived from elapsed time and the ready timestamp
//
// Key business rules:
//   - An order always has at least one line; quantities are positive
//   - Lines reference menu item ids but do not require them to still exist
//   - placedAt is fixed at creation; readyAt, once set, is never cleared
//   - Marking an order ready again refreshes readyAt but never moves it back
//   - Status is a pure function of (placedAt, readyAt, now)
package order
