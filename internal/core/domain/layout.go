package domain

import (
	"path/filepath"
	"time"
)

const (
	// DigestDirName is the name of the local workspace directory for cached state.
	DigestDirName = ".digest"

	// CacheDBFileName is the name of the SQLite database backing the current cache tier.
	CacheDBFileName = "cache.db"

	// LegacyDirName is the name of the directory backing the legacy cache tier.
	LegacyDirName = "legacy"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "digest.yaml"

	// DefaultManifestPath is the manifest location relative to the site root.
	DefaultManifestPath = "data/months.json"

	// MonthPayloadFile is the payload file name a month page refers to.
	MonthPayloadFile = "papers.json"

	// DefaultFetchTimeout bounds a single manifest or payload fetch.
	DefaultFetchTimeout = 15 * time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDBPath returns the default path of the current-tier database.
// It joins .digest and cache.db.
func DefaultCacheDBPath() string {
	return filepath.Join(DigestDirName, CacheDBFileName)
}

// DefaultLegacyPath returns the default directory of the legacy tier.
// It joins .digest and legacy.
func DefaultLegacyPath() string {
	return filepath.Join(DigestDirName, LegacyDirName)
}
