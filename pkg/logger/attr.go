package logger

import (
	"log/slog"
	"strconv"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors records the non-nil errors under the group "errors", indexed by position.
// If every error is nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Feature records the feature toggle name under the key "feature".
func Feature(name string) slog.Attr {
	return slog.String("feature", name)
}

// Dependency records the dependency name under the key "dependency".
func Dependency(name string) slog.Attr {
	return slog.String("dependency", name)
}

// Alert records a health alert under the key "alert".
// If alert is nil, it returns an empty Attr.
func Alert(alert any) slog.Attr {
	if alert == nil {
		return slog.Attr{}
	}
	return slog.Any("alert", alert)
}

// ToggleSetID records the toggle set identifier under the key "toggle_set_id".
func ToggleSetID(id string) slog.Attr {
	return slog.String("toggle_set_id", id)
}

// Source records the reset source kind under the key "source".
func Source(kind string) slog.Attr {
	return slog.String("source", kind)
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Channel records a pub/sub channel name under the key "channel".
func Channel(name string) slog.Attr {
	return slog.String("channel", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
