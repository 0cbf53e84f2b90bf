// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, a unit of work that
// holds the store's write lock, and persistence.
package commands

import (
	"cafe/internal/core/ports"
)

// UoWFactory creates the unit of work each handler runs in. Units of work
// of one factory never overlap, which serializes every command.
type UoWFactory = ports.UnitOfWorkFactory
