// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/digest/internal/adapters/config"
	_ "go.trai.ch/digest/internal/adapters/fetch"
	_ "go.trai.ch/digest/internal/adapters/logger"
	_ "go.trai.ch/digest/internal/adapters/storage"
	_ "go.trai.ch/digest/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/digest/internal/app"
	_ "go.trai.ch/digest/internal/engine/loader"
	_ "go.trai.ch/digest/internal/engine/monthcache"
)
