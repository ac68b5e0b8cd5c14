// Package monthcache resolves month payloads through the memory, persistent and network tiers.
package monthcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/metrics"
	"go.trai.ch/digest/internal/engine/normalize"
	"go.trai.ch/zerr"
)

// Tier names reported on the load span.
const (
	TierNone    = "none"
	TierMemory  = "memory"
	TierCurrent = "current"
	TierLegacy  = "legacy"
	TierNetwork = "network"
)

// Cache implements ports.PayloadCache.
//
// Tiers are checked strictly in order: memory, current storage, legacy
// storage, network. Each miss is the precondition for the next check.
// Concurrent loads of the same key are not de-duplicated.
type Cache struct {
	memory  *MemoryTier
	current ports.Storage
	legacy  ports.Storage
	fetcher ports.Fetcher
	metrics *metrics.Recorder
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates a Cache over the given persistent tiers and fetcher.
func New(
	current, legacy ports.Storage,
	fetcher ports.Fetcher,
	recorder *metrics.Recorder,
	tracer ports.Tracer,
	log ports.Logger,
) *Cache {
	return &Cache{
		memory:  NewMemoryTier(),
		current: current,
		legacy:  legacy,
		fetcher: fetcher,
		metrics: recorder,
		tracer:  tracer,
		logger:  log,
	}
}

// Load returns the normalized payload for req. It fails only when every tier
// missed and the fetch failed; the returned payload is then empty.
func (c *Cache) Load(ctx context.Context, req domain.LoadRequest) (domain.MonthPayload, error) {
	month := strings.TrimSpace(req.Month)
	resolved := domain.ResolvePath(strings.TrimSpace(req.SourcePath), req.View)
	if month == "" || resolved == "" {
		return domain.EmptyPayload(month), nil
	}

	key := domain.BuildCacheKey(month, req.Revision)
	ctx, span := c.tracer.Start(ctx, "monthcache.load",
		ports.WithAttribute("month", month),
		ports.WithAttribute("revision", domain.NormalizeRevision(req.Revision)),
	)
	defer span.End()

	if payload, ok := c.memory.Get(key); ok {
		c.metrics.Increment(domain.MetricMapHits)
		span.SetAttribute("tier", TierMemory)
		return payload, nil
	}

	if payload, ok := c.readStored(ctx, c.current, key, month); ok {
		c.memory.Set(key, payload)
		c.metrics.Increment(domain.MetricLocalHits)
		span.SetAttribute("tier", TierCurrent)
		return payload, nil
	}

	if payload, ok := c.readStored(ctx, c.legacy, key, month); ok {
		c.memory.Set(key, payload)
		c.migrate(ctx, key, payload)
		c.metrics.Increment(domain.MetricLocalHits)
		span.SetAttribute("tier", TierLegacy)
		return payload, nil
	}

	ref := domain.Locate(resolved, req.View, month)
	raw, err := c.fetcher.Fetch(ctx, ref)
	if err == nil && !gjson.ValidBytes(raw) {
		err = domain.ErrInvalidDocument
	}
	if err != nil {
		err = zerr.With(zerr.With(errors.Join(domain.ErrFetchFailed, err), "month", month), "path", ref)
		span.SetAttribute("tier", TierNone)
		span.RecordError(err)
		return domain.EmptyPayload(month), err
	}

	payload := normalize.Payload(raw, month)
	c.metrics.Increment(domain.MetricNetworkHits)
	span.SetAttribute("tier", TierNetwork)

	// The payload counts as written once it is cached in memory; the
	// persistent tier may refuse it silently.
	c.memory.Set(key, payload)
	c.store(ctx, c.current, key, payload)
	c.metrics.Increment(domain.MetricCacheWrites)
	return payload, nil
}

// readStored reads key from tier. Entries that do not decode are removed.
func (c *Cache) readStored(ctx context.Context, tier ports.Storage, key domain.CacheKey, month string) (domain.MonthPayload, bool) {
	raw, ok := tier.Get(ctx, key.String())
	if !ok {
		return domain.MonthPayload{}, false
	}
	payload, ok := normalize.Stored(raw, month)
	if !ok {
		c.logger.Debug(fmt.Sprintf("removing corrupt cache entry %s", key))
		tier.Remove(ctx, key.String())
		return domain.MonthPayload{}, false
	}
	return payload, true
}

// migrate copies a legacy entry into the current tier. The legacy entry is
// only dropped once the copy is stored.
func (c *Cache) migrate(ctx context.Context, key domain.CacheKey, payload domain.MonthPayload) {
	if !c.store(ctx, c.current, key, payload) {
		c.logger.Debug(fmt.Sprintf("keeping legacy cache entry %s: current tier rejected the write", key))
		return
	}
	c.legacy.Remove(ctx, key.String())
	c.logger.Debug(fmt.Sprintf("migrated legacy cache entry %s", key))
}

func (c *Cache) store(ctx context.Context, tier ports.Storage, key domain.CacheKey, payload domain.MonthPayload) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	return tier.Set(ctx, key.String(), string(data))
}

// ClearMemory drops the in-memory tier.
func (c *Cache) ClearMemory() {
	c.memory.Clear()
}

// ClearPersistent removes every payload entry from both persistent tiers and
// returns how many keys were removed.
func (c *Cache) ClearPersistent(ctx context.Context) int {
	removed := 0
	for _, tier := range []ports.Storage{c.current, c.legacy} {
		for _, key := range tier.Keys(ctx, domain.CachePrefix+":") {
			tier.Remove(ctx, key)
			removed++
		}
	}
	return removed
}

// Stats returns the current cache counters.
func (c *Cache) Stats() domain.CacheStats {
	return c.metrics.CurrentStats()
}

// ResetStats zeroes the cache counters.
func (c *Cache) ResetStats() {
	c.metrics.Reset()
}

// Metrics exposes the recorder so callers can scope counters to a run.
func (c *Cache) Metrics() *metrics.Recorder {
	return c.metrics
}
