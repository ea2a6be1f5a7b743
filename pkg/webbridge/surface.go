package webbridge

// Surface is an embedded web page the SDK can drive. Platform integrations
// wrap their webview in this interface; the tokenizer packages own the
// Surface they are given and release it through Close.
type Surface interface {
	// LoadURL navigates the surface to the given URL. Completion is
	// reported through the load handler, not synchronously.
	LoadURL(url string)

	// LoadHTML renders a literal HTML document on the surface. Completion
	// is reported through the load handler.
	LoadHTML(html string)

	// EvaluateScript runs a script in the page and delivers its result
	// through done. A nil done discards the result. The result is the
	// script's final expression value as mapped by the host (bool, string,
	// float64, map, or nil).
	EvaluateScript(script string, done func(result any, err error))

	// SetLoadHandler sets the callback invoked when a document finishes
	// loading. A later call replaces the previous handler.
	SetLoadHandler(fn func())

	// RegisterMessageHandler subscribes to a named message channel posted
	// from the page. Registering a name that already has a handler replaces
	// it; there is at most one active handler per channel.
	RegisterMessageHandler(name string, fn func(body any))

	// UnregisterMessageHandler removes the handler for a channel, if any.
	UnregisterMessageHandler(name string)

	// Close releases the page and removes every registered handler. The
	// surface must not be used afterwards.
	Close()
}
