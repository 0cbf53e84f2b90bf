package sqlstore

import (
	"context"
	"log/slog"
	"sync"

	"cafe/internal/core/ports"

	"gorm.io/gorm"
)

var (
	_ ports.UnitOfWorkFactory = (*Broker)(nil)
	_ ports.Viewer            = (*Broker)(nil)
)

// Broker is the single entry point to one store instance. Every session on
// every listener shares the same Broker.
//
// Writes go through units of work created by Create and are serialized by
// an RWMutex held for the whole transaction, so order id assignment and
// menu uniqueness checks never race. Reads go through View and share the
// read side of the same mutex.
type Broker struct {
	db     *gorm.DB
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewBroker creates the broker for db.
func NewBroker(db *gorm.DB, logger *slog.Logger) *Broker {
	return &Broker{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Create returns a new unit of work. It holds no lock until Begin.
func (b *Broker) Create() ports.UnitOfWork {
	return &GormUnitOfWork{broker: b}
}

// View runs fn with read access to the store.
func (b *Broker) View(ctx context.Context, fn func(view ports.ReadView) error) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return fn(readView{db: b.db.WithContext(ctx), logger: b.logger})
}
