package wallet

import "errors"

var (
	// ErrInvalidURL is returned by NewHandler for a URL the handler cannot
	// POST to.
	ErrInvalidURL = errors.New("invalid process-payment URL")

	// ErrRequestFailed wraps transport-level failures of the authorize POST.
	ErrRequestFailed = errors.New("process-payment request failed")
)
