package cardtokenizer

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/payonekit/pkg/logger"
	"github.com/dmitrymomot/payonekit/pkg/webbridge"
)

// state tracks the tokenizer run. Transitions only move forward; any message
// arriving outside the single state that expects it is dropped.
type state int

const (
	stateIdle state = iota
	statePageLoading
	stateAwaitingScriptLoad
	statePopulatingFields
	stateAwaitingSubmit
	stateAwaitingResult
	stateFinished
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case statePageLoading:
		return "page_loading"
	case stateAwaitingScriptLoad:
		return "awaiting_script_load"
	case statePopulatingFields:
		return "populating_fields"
	case stateAwaitingSubmit:
		return "awaiting_submit"
	case stateAwaitingResult:
		return "awaiting_result"
	case stateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Tokenizer drives one creditcardcheck run against a hosted page. It owns the
// surface it is given: Close releases the page and all message handlers.
type Tokenizer struct {
	surface            webbridge.Surface
	url                string
	request            Request
	supportedCardTypes []CardType
	config             Config
	log                *slog.Logger

	state state
	done  bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLogger sets the diagnostic sink. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(t *Tokenizer) {
		if log != nil {
			t.log = log
		}
	}
}

// New creates a tokenizer for the page hosted at tokenizerURL. The surface is
// owned by the returned Tokenizer until Close.
func New(surface webbridge.Surface, tokenizerURL string, req Request, supportedCardTypes []CardType, cfg Config, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		surface:            surface,
		url:                tokenizerURL,
		request:            req,
		supportedCardTypes: supportedCardTypes,
		config:             cfg,
		log:                slog.Default(),
		state:              stateIdle,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins a tokenization run by loading the hosted page. It returns
// ErrInProgress while a previous run has not reached a terminal state; after
// a terminal outcome a new call starts a fresh run with a fresh page load.
// The network activity of the check itself happens inside the page — the
// tokenizer only navigates, injects scripts, and observes messages.
func (t *Tokenizer) Start() error {
	if t.state != stateIdle && t.state != stateFinished {
		return ErrInProgress
	}
	if err := t.config.validate(); err != nil {
		return err
	}

	t.done = false
	t.state = statePageLoading
	t.surface.SetLoadHandler(t.pageDidFinish)
	t.surface.LoadURL(t.url)
	return nil
}

// Close removes every registered message handler and releases the page
// surface. A run still in flight never completes; its callback is not fired.
func (t *Tokenizer) Close() {
	for _, m := range []ScriptMessage{
		ScriptMessageLoaded,
		ScriptMessageError,
		ScriptMessageSubmitClicked,
		ScriptMessageResponse,
	} {
		t.surface.UnregisterMessageHandler(string(m))
	}
	t.surface.Close()
}

// pageDidFinish runs when the hosted page finishes loading: verify the submit
// control exists, then inject the hosted script and listen for its outcome.
func (t *Tokenizer) pageDidFinish() {
	if t.state != statePageLoading {
		t.log.Warn("page load finished out of state", logger.State(t.state.String()))
		return
	}

	t.surface.EvaluateScript(elementExists(t.config.SubmitButtonID), func(result any, err error) {
		exists, ok := result.(bool)
		if err != nil || !ok || !exists {
			t.log.Error("submit control not found in hosted page",
				logger.ElementID(t.config.SubmitButtonID))
			t.finish(nil, fmt.Errorf("%w: #%s", ErrMissingElement, t.config.SubmitButtonID))
			return
		}

		t.state = stateAwaitingScriptLoad
		t.listen(ScriptMessageLoaded)
		t.listen(ScriptMessageError)
		t.surface.EvaluateScript(t.loadHostedScript(), nil)
	})
}

// listen subscribes the dispatcher to one message channel. The surface
// replaces any previous handler for the channel, keeping subscriptions
// at-most-one per channel even when a state is re-entered.
func (t *Tokenizer) listen(msg ScriptMessage) {
	t.surface.RegisterMessageHandler(string(msg), func(body any) {
		t.dispatch(msg, body)
	})
}

// dispatch is the single entry point for every inbound page message. Each
// channel is only acted on in the one state that expects it.
func (t *Tokenizer) dispatch(msg ScriptMessage, body any) {
	switch msg {
	case ScriptMessageLoaded:
		if t.state != stateAwaitingScriptLoad {
			t.drop(msg)
			return
		}
		t.handleScriptLoaded()
	case ScriptMessageError:
		if t.state != stateAwaitingScriptLoad {
			t.drop(msg)
			return
		}
		t.log.Error("loading PAYONE hosted script failed")
		t.finish(nil, ErrLoadingScriptFailed)
	case ScriptMessageSubmitClicked:
		if t.state != stateAwaitingSubmit {
			t.drop(msg)
			return
		}
		t.handleSubmitClicked()
	case ScriptMessageResponse:
		if t.state != stateAwaitingResult {
			t.drop(msg)
			return
		}
		t.handleResponse(body)
	default:
		t.log.Warn("unknown message from page", logger.Channel(string(msg)))
	}
}

func (t *Tokenizer) handleScriptLoaded() {
	t.state = statePopulatingFields
	t.listen(ScriptMessageSubmitClicked)
	t.surface.EvaluateScript(t.populatePage(), func(_ any, err error) {
		if err != nil {
			t.log.Error("populating page with inputs failed", logger.Error(err))
			t.finish(nil, fmt.Errorf("%w: %v", ErrPopulatingHTMLFailed, err))
			return
		}
		if t.state == statePopulatingFields {
			t.state = stateAwaitingSubmit
		}
	})
}

func (t *Tokenizer) handleSubmitClicked() {
	t.state = stateAwaitingResult
	t.listen(ScriptMessageResponse)
	t.surface.EvaluateScript(t.initiateCheck(), nil)
}

func (t *Tokenizer) handleResponse(body any) {
	resp, err := DecodeResponse(body)
	if err != nil {
		t.log.Error("invalid creditcardcheck response received", logger.Error(err))
		t.finish(nil, err)
		return
	}
	t.finish(resp, nil)
}

func (t *Tokenizer) drop(msg ScriptMessage) {
	t.log.Warn("message ignored in current state",
		logger.Channel(string(msg)), logger.State(t.state.String()))
}

// finish delivers the run's terminal outcome. The done guard keeps the
// callback at exactly one invocation no matter how many stray messages or
// duplicate terminal events arrive afterwards.
func (t *Tokenizer) finish(resp *Response, err error) {
	if t.done {
		t.log.Warn("duplicate terminal outcome dropped", logger.State(t.state.String()))
		return
	}
	t.done = true
	t.state = stateFinished
	t.config.OnResult(resp, err)
}
