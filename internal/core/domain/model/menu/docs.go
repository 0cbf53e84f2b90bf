// Package menu provides the MenuItem value object of the cafe domain.
//
// Key business rules:
//   - Menu item ids are chosen by staff and must be positive
//   - Names must not be blank and are compared case-sensitively
//   - Items are never renamed; staff remove and re-add instead
//
// Uniqueness of ids and names is a store-wide property enforced by the
// menu repository; this package only names the two conflicts
// (ErrDuplicateID, ErrDuplicateName) so every layer reports them the same way.
package menu
