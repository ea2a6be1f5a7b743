package fingerprint

import "errors"

var (
	// ErrScriptFailed means the Payla init script could not be evaluated
	// in the page. The underlying surface error is attached as context.
	ErrScriptFailed = errors.New("fingerprint script failed")

	// ErrNoToken means the script finished without producing a token.
	// Should not occur; kept as a distinct identity for diagnostics.
	ErrNoToken = errors.New("no snippet token available")
)
