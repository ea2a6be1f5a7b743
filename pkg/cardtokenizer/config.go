package cardtokenizer

import (
	"fmt"
	"strings"
)

// Config describes the hosted page the tokenizer drives: where each card
// field is injected, how the widget is styled, and the callback that receives
// the run's single terminal outcome.
type Config struct {
	// CardPan, CardCVC2, CardExpireMonth and CardExpireYear place the four
	// required card-data inputs.
	CardPan         Field
	CardCVC2        Field
	CardExpireMonth Field
	CardExpireYear  Field

	// DefaultStyles maps element types to CSS applied when a field carries
	// no style of its own.
	DefaultStyles map[string]string

	// Language selects the widget locale.
	Language Language

	// Error is the id of the element that receives hosted-field error
	// messages.
	Error string

	// SubmitButtonID is the id of the control that triggers the
	// creditcardcheck. The run fails with ErrMissingElement when the
	// loaded page has no such element.
	SubmitButtonID string

	// OnResult receives the terminal outcome of a run: a decoded Response
	// on success, or exactly one of the package sentinel errors. It is
	// invoked exactly once per run.
	OnResult func(resp *Response, err error)
}

func (c Config) validate() error {
	if c.SubmitButtonID == "" {
		return fmt.Errorf("%w: submit button id is required", ErrInvalidConfig)
	}
	if c.OnResult == nil {
		return fmt.Errorf("%w: result callback is required", ErrInvalidConfig)
	}
	return nil
}

// renderDefaultStyles emits the defaultStyle object body, one sorted
// key: "value" pair per line.
func (c Config) renderDefaultStyles() string {
	pairs := make([]string, 0, len(c.DefaultStyles))
	for _, k := range sortedKeys(c.DefaultStyles) {
		pairs = append(pairs, fmt.Sprintf("%s: %q", k, c.DefaultStyles[k]))
	}
	return strings.Join(pairs, ",\n")
}
