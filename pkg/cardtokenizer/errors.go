package cardtokenizer

import "errors"

// Terminal run errors delivered through Config.OnResult, plus the errors
// Start can return before a run begins. Wrapped with fmt.Errorf("%w: ...")
// where extra context exists, so callers match with errors.Is.
var (
	// ErrLoadingScriptFailed means the PAYONE hosted script could not be
	// loaded into the page.
	ErrLoadingScriptFailed = errors.New("loading hosted script failed")

	// ErrPopulatingHTMLFailed means evaluating the field-population script
	// inside the page failed.
	ErrPopulatingHTMLFailed = errors.New("populating page with hosted fields failed")

	// ErrInvalidResponse means the page posted a creditcardcheck result
	// that could not be decoded.
	ErrInvalidResponse = errors.New("invalid tokenizer response")

	// ErrMissingElement means a DOM element the run depends on (the submit
	// control) does not exist in the loaded page.
	ErrMissingElement = errors.New("required element missing from page")

	// ErrInProgress is returned by Start while a previous run has not
	// reached a terminal state.
	ErrInProgress = errors.New("tokenization already in progress")

	// ErrInvalidConfig is returned by Start when the configuration cannot
	// support a run at all.
	ErrInvalidConfig = errors.New("invalid tokenizer configuration")
)
