package feature

import (
	"log/slog"

	"github.com/dmitrymomot/togglekit/pkg/logger"
)

// OnHealthAlert registers the process-wide handler for health alerts.
// The last registration wins; nil disables reporting.
func OnHealthAlert(handler HealthHandler) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.healthHandler = handler
}

func healthHandler() HealthHandler {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.healthHandler
}

// runHealthChecks probes every feature once and reports non-nil alerts.
// Without a handler the probes are not called.
func runHealthChecks(features []Feature, handler HealthHandler, log *slog.Logger) {
	if handler == nil {
		return
	}

	for _, f := range features {
		if f.Health == nil {
			continue
		}
		alert := f.Health()
		if alert == nil {
			continue
		}
		log.Warn("feature health alert", logger.Feature(f.Name), logger.Alert(alert))
		handler(f.Name, alert)
	}
}
