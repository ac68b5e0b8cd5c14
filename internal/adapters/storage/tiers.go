package storage

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/digest/internal/adapters/storage/filestore"
	"go.trai.ch/digest/internal/adapters/storage/sqlite"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tiers bundles the two persistent stores consulted by the month cache.
type Tiers struct {
	// Current is the primary persistent store.
	Current ports.Storage
	// Legacy is the older store whose entries are migrated into Current on read.
	Legacy ports.Storage
}

// Close releases any store holding an open handle.
func (t Tiers) Close() error {
	var errs error
	for _, s := range []ports.Storage{t.Current, t.Legacy} {
		if c, ok := s.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil {
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to close storage tier"), "tier", fmt.Sprintf("%T", s)))
			}
		}
	}
	return errs
}

// Open opens the persistent tiers described by cfg. A tier that cannot be
// opened degrades to Disabled and is reported through log.
func Open(ctx context.Context, cfg domain.Config, log ports.Logger) Tiers {
	if cfg.NoPersist {
		log.Debug("persistent cache disabled by configuration")
		return Tiers{Current: Disabled{}, Legacy: Disabled{}}
	}

	tiers := Tiers{Current: Disabled{}, Legacy: Disabled{}}

	if current, err := sqlite.Open(ctx, cfg.CacheDBPath); err != nil {
		log.Warn(fmt.Sprintf("current cache tier unavailable: %v", err))
	} else {
		tiers.Current = current
	}

	if legacy, err := filestore.Open(cfg.LegacyDir); err != nil {
		log.Warn(fmt.Sprintf("legacy cache tier unavailable: %v", err))
	} else {
		tiers.Legacy = legacy
	}

	return tiers
}
