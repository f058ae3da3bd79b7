// Package logger builds *slog.Logger instances with functional options and
// provides attribute constructors that keep key names consistent across
// togglekit packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/togglekit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(os.Getenv("APP_ENV"), "togglekit"),
//	        logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Warn("feature health alert",
//	        logger.Feature("new-checkout"),
//	        logger.Alert("expired"),
//	    )
//	}
//
// # Configuration
//
//   - WithEnvironment – defaults per environment (development, staging, production).
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel / WithLevelName – set the minimum level.
//   - WithOutput – redirect output; the default is stderr.
//   - WithAttr – attach static attributes.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("snapshot written", logger.Error(err))
//
// needs no additional nil check.
package logger
