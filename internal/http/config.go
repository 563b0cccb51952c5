package http

import (
	"github.com/mrlokans/bookshelf/internal/representations"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Library   LibraryService
	Presenter *representations.Presenter

	// Health check target; nil reports "not configured"
	Database Pinger

	// Metrics collection; nil disables /metrics
	Metrics *Metrics

	// Application info
	Version string
}
