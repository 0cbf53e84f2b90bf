package order

import (
	"fmt"
	"time"

	"cafe/internal/pkg/errs"
)

// Status is the customer-facing progress of an order. It is never stored;
// it is derived from the order's timestamps whenever someone asks.
//
// Derivation:
//
//	readyAt set ───────────────> Ready
//	elapsed < 2m ──────────────> Received
//	2m <= elapsed < 5m ────────> Preparing
//	elapsed >= 5m ─────────────> AlmostReady
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Received means the order was placed less than ReceivedWindow ago.
	Received

	// Preparing means the order is between ReceivedWindow and PreparingWindow old.
	Preparing

	// AlmostReady means the order is older than PreparingWindow and not yet ready.
	AlmostReady

	// Ready means staff marked the order ready. It is terminal.
	Ready
)

const (
	// ReceivedWindow is how long an order reads as just received.
	ReceivedWindow = 2 * time.Minute

	// PreparingWindow is the age after which an order reads as almost ready.
	PreparingWindow = 5 * time.Minute
)

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Received:    "Barista received your order.",
		Preparing:   "Drinks are being prepared.",
		AlmostReady: "Almost ready...",
		Ready:       "Ready for pickup!",
	}
}

// DeriveStatus maps an order's timestamps to its status at now.
//
// It is a pure function: the same inputs always give the same result, and a
// present readyAt yields Ready regardless of elapsed time.
//
// Example:
//
//	placed := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
//	order.DeriveStatus(placed, nil, placed.Add(3*time.Minute)) // Preparing
func DeriveStatus(placedAt time.Time, readyAt *time.Time, now time.Time) Status {
	if readyAt != nil {
		return Ready
	}

	elapsed := now.Sub(placedAt)
	switch {
	case elapsed < ReceivedWindow:
		return Received
	case elapsed < PreparingWindow:
		return Preparing
	default:
		return AlmostReady
	}
}

// Validate checks that s is one of the derivable statuses.
func (s Status) Validate() error {
	if s < Received || s > Ready {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the customer-facing label, e.g. "Ready for pickup!".
func (s Status) String() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsReady reports whether the order has reached the terminal Ready status.
func (s Status) IsReady() bool {
	return s == Ready
}

// Stage returns the short staff-facing stage: READY or PREP.
func (s Status) Stage() string {
	if s.IsReady() {
		return "READY"
	}
	return "PREP"
}
