// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/casgen/internal/adapters/config"
	_ "go.trai.ch/casgen/internal/adapters/fs"
	_ "go.trai.ch/casgen/internal/adapters/logger"
	_ "go.trai.ch/casgen/internal/adapters/settings"
	// Register app and engine nodes.
	_ "go.trai.ch/casgen/internal/app"
	_ "go.trai.ch/casgen/internal/engine/generator"
)
