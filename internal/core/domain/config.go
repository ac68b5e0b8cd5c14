package domain

import "time"

// Config holds the resolved settings of a digest session.
type Config struct {
	// SiteRoot is the published site: an http(s) base URL or a local directory.
	SiteRoot string
	// ManifestPath locates the months manifest relative to SiteRoot.
	ManifestPath string
	// FallbackMonths are listed when the manifest cannot be loaded.
	FallbackMonths []string
	// CacheDBPath is the SQLite file backing the current persistent tier.
	CacheDBPath string
	// LegacyDir is the directory backing the legacy persistent tier.
	LegacyDir string
	// NoPersist disables both persistent tiers.
	NoPersist bool
	// FetchTimeout bounds a single fetch.
	FetchTimeout time.Duration
	// LogJSON switches logging to JSON lines.
	LogJSON bool
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
}

// DefaultConfig returns the settings used when no configuration is present.
func DefaultConfig() Config {
	return Config{
		SiteRoot:     ".",
		ManifestPath: DefaultManifestPath,
		CacheDBPath:  DefaultCacheDBPath(),
		LegacyDir:    DefaultLegacyPath(),
		FetchTimeout: DefaultFetchTimeout,
		LogLevel:     "info",
	}
}
