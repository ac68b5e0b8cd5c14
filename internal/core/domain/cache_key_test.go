package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/digest/internal/core/domain"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, domain.CacheKey("eegfm:monthPayload:v1:2024-05:r1"), domain.BuildCacheKey("2024-05", "r1"))
	assert.Equal(t, domain.CacheKey("eegfm:monthPayload:v1:2024-05:legacy"), domain.BuildCacheKey(" 2024-05 ", "  "))
	assert.Equal(t, domain.BuildCacheKey("2024-05", " r1 "), domain.BuildCacheKey("2024-05", "r1"))
}

func TestBuildCacheKey_Injective(t *testing.T) {
	pairs := [][2]string{
		{"2024-05", "r1"},
		{"2024-05", "r2"},
		{"2024-06", "r1"},
		{"2024-05", ""},
		{"2024-0", "5:r1"},
		{"2024-05", "legacy2"},
	}
	seen := make(map[domain.CacheKey][2]string)
	for _, p := range pairs {
		key := domain.BuildCacheKey(p[0], p[1])
		if prev, ok := seen[key]; ok {
			t.Fatalf("%v and %v share key %s", prev, p, key)
		}
		seen[key] = p
	}
}

func TestNormalizeRevision(t *testing.T) {
	assert.Equal(t, "legacy", domain.NormalizeRevision(""))
	assert.Equal(t, "legacy", domain.NormalizeRevision(" \t"))
	assert.Equal(t, "abc", domain.NormalizeRevision(" abc "))
}
