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

// Channel records a page message channel name under the key "channel".
func Channel(name string) slog.Attr {
	return slog.String("channel", name)
}

// State records a state machine state under the key "state".
func State(state string) slog.Attr {
	return slog.String("state", state)
}

// ElementID records a DOM element id under the key "element_id".
func ElementID(id string) slog.Attr {
	return slog.String("element_id", id)
}

// Transaction records a payment transaction identifier under the key
// "transaction".
func Transaction(id string) slog.Attr {
	return slog.String("transaction", id)
}
