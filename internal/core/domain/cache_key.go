package domain

import "strings"

const (
	// CachePrefix namespaces every persisted month payload entry.
	CachePrefix = "eegfm:monthPayload"

	// CacheSchemaVersion is bumped whenever the stored payload shape changes.
	// Entries written under an older version are never read again.
	CacheSchemaVersion = "v1"

	// LegacyRevision is the revision bucket for payloads published without one.
	LegacyRevision = "legacy"
)

// CacheKey identifies one month payload revision in every cache tier.
type CacheKey string

// String returns the key as stored.
func (k CacheKey) String() string {
	return string(k)
}

// NormalizeRevision trims a revision marker, substituting LegacyRevision when blank.
func NormalizeRevision(revision string) string {
	if v := strings.TrimSpace(revision); v != "" {
		return v
	}
	return LegacyRevision
}

// BuildCacheKey derives the versioned cache key for a month and revision.
// Format: <prefix>:<schemaVersion>:<month>:<revision>.
func BuildCacheKey(month, revision string) CacheKey {
	return CacheKey(CachePrefix + ":" + CacheSchemaVersion + ":" +
		strings.TrimSpace(month) + ":" + NormalizeRevision(revision))
}
