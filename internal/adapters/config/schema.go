package config

import "time"

// Digestfile represents the structure of the digest.yaml configuration file.
// The env tags name the overrides read after the file, prefixed with DIGEST_.
type Digestfile struct {
	SiteRoot       string        `yaml:"site_root"       env:"SITE_ROOT"`
	ManifestPath   string        `yaml:"manifest_path"   env:"MANIFEST_PATH"`
	FallbackMonths []string      `yaml:"fallback_months" env:"FALLBACK_MONTHS"`
	CacheDB        string        `yaml:"cache_db"        env:"CACHE_DB"`
	LegacyDir      string        `yaml:"legacy_dir"      env:"LEGACY_DIR"`
	NoPersist      bool          `yaml:"no_persist"      env:"NO_PERSIST"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout"   env:"FETCH_TIMEOUT"`
	Log            LogDTO        `yaml:"log"             envPrefix:"LOG_"`
}

// LogDTO represents the logging section of the configuration.
type LogDTO struct {
	JSON  bool   `yaml:"json"  env:"JSON"`
	Level string `yaml:"level" env:"LEVEL"`
}
