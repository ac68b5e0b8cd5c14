// Package config provides the configuration loader for digest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DIGEST_"

// Loader implements ports.ConfigLoader using a YAML file plus environment overrides.
type Loader struct {
	Logger ports.Logger
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers digest.yaml from cwd upwards, applies DIGEST_* overrides and
// resolves relative paths. Without a config file, paths resolve against cwd.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	defaults := domain.DefaultConfig()
	file := Digestfile{
		SiteRoot:     defaults.SiteRoot,
		ManifestPath: defaults.ManifestPath,
		CacheDB:      defaults.CacheDBPath,
		LegacyDir:    defaults.LegacyDir,
		FetchTimeout: defaults.FetchTimeout,
		Log:          LogDTO{Level: defaults.LogLevel},
	}

	baseDir := filepath.Clean(cwd)
	if configPath, ok := findConfiguration(cwd); ok {
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return domain.Config{}, zerr.With(err, "path", configPath)
		}
		baseDir = filepath.Dir(configPath)
		l.Logger.Debug(fmt.Sprintf("loaded configuration from %s", configPath))
	}

	if err := env.ParseWithOptions(&file, env.Options{Prefix: EnvPrefix, Environment: l.Environment}); err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}

	timeout := file.FetchTimeout
	if timeout <= 0 {
		timeout = defaults.FetchTimeout
	}

	return domain.Config{
		SiteRoot:       resolveSiteRoot(baseDir, file.SiteRoot),
		ManifestPath:   strings.TrimSpace(file.ManifestPath),
		FallbackMonths: trimAll(file.FallbackMonths),
		CacheDBPath:    resolvePath(baseDir, file.CacheDB),
		LegacyDir:      resolvePath(baseDir, file.LegacyDir),
		NoPersist:      file.NoPersist,
		FetchTimeout:   timeout,
		LogJSON:        file.Log.JSON,
		LogLevel:       strings.ToLower(strings.TrimSpace(file.Log.Level)),
	}, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by walking up from cwd
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func resolveSiteRoot(baseDir, root string) string {
	root = strings.TrimSpace(root)
	if domain.HasScheme(root) {
		return strings.TrimRight(root, "/")
	}
	return resolvePath(baseDir, root)
}

func resolvePath(baseDir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return filepath.Clean(baseDir)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
