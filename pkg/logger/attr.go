package logger

import "log/slog"

// Field records the validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a predicate name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// MessageKey records the message template key under the key "message_key".
func MessageKey(key string) slog.Attr {
	return slog.String("message_key", key)
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Failures records the number of failed checks under the key "failures".
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Fields records the number of validated fields under the key "fields".
func Fields(n int) slog.Attr {
	return slog.Int("fields", n)
}
