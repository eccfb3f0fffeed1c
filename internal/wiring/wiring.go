// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.veld.sh/veld/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.veld.sh/veld/internal/app"
	_ "go.veld.sh/veld/internal/engine/names"
)
