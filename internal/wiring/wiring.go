// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reqs/internal/adapters/config"
	_ "go.trai.ch/reqs/internal/adapters/fs"
	_ "go.trai.ch/reqs/internal/adapters/logger"
	_ "go.trai.ch/reqs/internal/adapters/manifest"
	_ "go.trai.ch/reqs/internal/adapters/parser"
	_ "go.trai.ch/reqs/internal/adapters/telemetry"
	_ "go.trai.ch/reqs/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/reqs/internal/app"
	_ "go.trai.ch/reqs/internal/engine/analyzer"
)
