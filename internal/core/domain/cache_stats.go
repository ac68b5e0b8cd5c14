package domain

import "encoding/json"

// Metric names a cache counter.
type Metric string

const (
	// MetricMapHits counts payloads served from the in-memory tier.
	MetricMapHits Metric = "map_hits"
	// MetricLocalHits counts payloads served from a persistent tier.
	MetricLocalHits Metric = "local_hits"
	// MetricNetworkHits counts payloads fetched from the network.
	MetricNetworkHits Metric = "network_hits"
	// MetricCacheWrites counts payloads written after a network fetch.
	MetricCacheWrites Metric = "cache_writes"
)

// CumulativeStats are process-wide counters; they only ever grow until reset.
type CumulativeStats struct {
	MapHits     int `json:"map_hits"`
	LocalHits   int `json:"local_hits"`
	NetworkHits int `json:"network_hits"`
	CacheWrites int `json:"cache_writes"`
}

// RunStats is the counter snapshot of one multi-month aggregation run.
type RunStats struct {
	MapHits      int `json:"map_hits"`
	LocalHits    int `json:"local_hits"`
	NetworkHits  int `json:"network_hits"`
	MonthsTotal  int `json:"months_total"`
	MonthsLoaded int `json:"months_loaded"`
}

// CacheStats combines the cumulative counters with the most relevant run:
// the active one while a run is in progress, else the last finalized one.
type CacheStats struct {
	Cumulative CumulativeStats `json:"cumulative"`
	LastRun    *RunStats       `json:"last_run"`
}

// MarshalJSON also lists the cumulative counters at the top level, with
// session_hits as an alias of local_hits, so stats dumps can be read flat.
func (s CacheStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Cumulative  CumulativeStats `json:"cumulative"`
		LastRun     *RunStats       `json:"last_run"`
		MapHits     int             `json:"map_hits"`
		LocalHits   int             `json:"local_hits"`
		SessionHits int             `json:"session_hits"`
		NetworkHits int             `json:"network_hits"`
		CacheWrites int             `json:"cache_writes"`
	}{
		Cumulative:  s.Cumulative,
		LastRun:     s.LastRun,
		MapHits:     s.Cumulative.MapHits,
		LocalHits:   s.Cumulative.LocalHits,
		SessionHits: s.Cumulative.LocalHits,
		NetworkHits: s.Cumulative.NetworkHits,
		CacheWrites: s.Cumulative.CacheWrites,
	})
}
