package commands

import (
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

var ErrCleanupStaleDraftsCommandIsNotConstructed = errors.New(
	"CleanupStaleDraftsCommand must be created via NewCleanupStaleDraftsCommand constructor",
)

// CleanupStaleDraftsCommand represents a maintenance request to delete
// Draft comandas that were abandoned: not touched for longer than the TTL.
// A Draft was never visible to the kitchen nor counted by reports, so
// deleting it has no observable effect beyond freeing its origin.
type CleanupStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupStaleDraftsCommand creates a command to delete stale drafts.
// The TTL must be positive.
func NewCleanupStaleDraftsCommand(ttl time.Duration) (CleanupStaleDraftsCommand, error) {
	cmd := CleanupStaleDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return CleanupStaleDraftsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupStaleDraftsCommandIsNotConstructed)
}

// TTL returns how long a Draft may stay untouched before deletion.
func (c CleanupStaleDraftsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CleanupStaleDraftsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	c.ttl = ttl
	return nil
}
