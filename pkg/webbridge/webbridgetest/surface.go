// Package webbridgetest provides a scripted in-memory webbridge.Surface for
// testing packages that drive an embedded page.
package webbridgetest

import "github.com/dmitrymomot/payonekit/pkg/webbridge"

// Surface records every interaction and lets a test script the page's side of
// the conversation. Script evaluation completes synchronously, which matches
// the single-goroutine delivery contract of webbridge.Surface.
//
// Zero value is not usable; use New.
type Surface struct {
	// LoadedURLs and LoadedHTML record every navigation in order.
	LoadedURLs []string
	LoadedHTML []string

	// Scripts records every script passed to EvaluateScript.
	Scripts []string

	// Registrations and Removals record handler churn per channel name,
	// including repeats, so tests can assert remove-then-add idempotence.
	Registrations []string
	Removals      []string

	// CloseCalls counts Close invocations.
	CloseCalls int

	// EvalResult, when set, decides what each evaluated script returns.
	// When nil every script yields (nil, nil).
	EvalResult func(script string) (any, error)

	loadHandler func()
	handlers    map[string]func(body any)
}

var _ webbridge.Surface = (*Surface)(nil)

// New returns an empty scripted surface.
func New() *Surface {
	return &Surface{handlers: make(map[string]func(body any))}
}

func (s *Surface) LoadURL(url string) {
	s.LoadedURLs = append(s.LoadedURLs, url)
}

func (s *Surface) LoadHTML(html string) {
	s.LoadedHTML = append(s.LoadedHTML, html)
}

func (s *Surface) EvaluateScript(script string, done func(result any, err error)) {
	s.Scripts = append(s.Scripts, script)

	var result any
	var err error
	if s.EvalResult != nil {
		result, err = s.EvalResult(script)
	}
	if done != nil {
		done(result, err)
	}
}

func (s *Surface) SetLoadHandler(fn func()) {
	s.loadHandler = fn
}

func (s *Surface) RegisterMessageHandler(name string, fn func(body any)) {
	s.Registrations = append(s.Registrations, name)
	s.handlers[name] = fn
}

func (s *Surface) UnregisterMessageHandler(name string) {
	s.Removals = append(s.Removals, name)
	delete(s.handlers, name)
}

func (s *Surface) Close() {
	s.CloseCalls++
	s.loadHandler = nil
	s.handlers = make(map[string]func(body any))
}

// FinishLoad simulates the current document finishing its load.
func (s *Surface) FinishLoad() {
	if s.loadHandler != nil {
		s.loadHandler()
	}
}

// Post delivers a message on the named channel and reports whether a handler
// was subscribed to receive it.
func (s *Surface) Post(name string, body any) bool {
	fn, ok := s.handlers[name]
	if !ok {
		return false
	}
	fn(body)
	return true
}

// HandlerCount returns the number of active handlers for a channel name,
// which is always 0 or 1 under the Surface contract.
func (s *Surface) HandlerCount(name string) int {
	if _, ok := s.handlers[name]; ok {
		return 1
	}
	return 0
}

// RegistrationCount returns how many times a handler was registered for the
// channel, counting replacements.
func (s *Surface) RegistrationCount(name string) int {
	n := 0
	for _, r := range s.Registrations {
		if r == name {
			n++
		}
	}
	return n
}
