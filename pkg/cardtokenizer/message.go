package cardtokenizer

import "fmt"

// ScriptMessage is one of the four named channels the hosted page uses to
// talk back to the SDK. The set is closed: the page never posts on any other
// channel, and anything unrecognized is logged and dropped.
type ScriptMessage string

const (
	// ScriptMessageLoaded signals that the PAYONE hosted script finished
	// loading inside the page.
	ScriptMessageLoaded ScriptMessage = "scriptLoaded"
	// ScriptMessageError signals that the hosted script failed to load.
	ScriptMessageError ScriptMessage = "scriptError"
	// ScriptMessageSubmitClicked signals that the configured submit
	// control was clicked.
	ScriptMessageSubmitClicked ScriptMessage = "submitButtonClicked"
	// ScriptMessageResponse carries the creditcardcheck result as a flat
	// string map.
	ScriptMessageResponse ScriptMessage = "responseReceived"
)

// PostMessageScript renders the literal call the page executes to post on
// this channel. The host environment intercepts exactly this namespaced
// invocation, so the shape is part of the page contract.
func (m ScriptMessage) PostMessageScript(body string) string {
	return fmt.Sprintf("window.webkit.messageHandlers.%s.postMessage(%s);", m, body)
}
