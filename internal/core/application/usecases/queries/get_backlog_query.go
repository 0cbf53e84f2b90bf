package queries

import (
	"errors"
	"time"

	"cafe/internal/pkg/guard"
)

var ErrGetBacklogQueryIsNotConstructed = errors.New(
	"GetBacklogQuery must be created via NewGetBacklogQuery constructor",
)

// GetBacklogQuery summarizes orders that are not ready yet.
type GetBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBacklogQuery creates the parameterless backlog query.
func NewGetBacklogQuery() GetBacklogQuery {
	return GetBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetBacklogQueryIsNotConstructed)
}

// GetBacklogQueryResponse counts pending orders per status. OldestID and
// OldestAge describe the longest-waiting order and are zero when Pending is 0.
type GetBacklogQueryResponse struct {
	Pending     int
	Received    int
	Preparing   int
	AlmostReady int
	OldestID    int64
	OldestAge   time.Duration
}
