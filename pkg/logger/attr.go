package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Category records a device category under the key "device".
func Category(category string) slog.Attr {
	return slog.String("device", category)
}

// UserAgent records the raw agent under the key "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// CacheKey records a cache key under the key "cache_key".
func CacheKey(key string) slog.Attr {
	return slog.String("cache_key", key)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
