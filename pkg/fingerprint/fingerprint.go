package fingerprint

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/payonekit/pkg/environment"
	"github.com/dmitrymomot/payonekit/pkg/logger"
	"github.com/dmitrymomot/payonekit/pkg/webbridge"
)

const dcsScriptURLFormat = "https://d.payla.io/dcs/%s/%s/dcs.js"

// Tokenizer produces the Payla snippet token for one device session. The
// token is fixed at construction; GetSnippetToken only confirms that the DCS
// script initialized under it.
type Tokenizer struct {
	partnerID  string
	merchantID string
	env        environment.Environment
	token      string
	log        *slog.Logger

	done bool
}

// Option configures a Tokenizer.
type Option func(*options)

type options struct {
	sessionID string
	log       *slog.Logger
}

// WithSessionID pins the session component of the snippet token. Without it a
// random UUID is used.
func WithSessionID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.sessionID = id
		}
	}
}

// WithLogger sets the diagnostic sink. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// New creates a fingerprint tokenizer for the given Payla partner and partner
// merchant.
func New(paylaPartnerID, partnerMerchantID string, env environment.Environment, opts ...Option) *Tokenizer {
	o := &options{
		sessionID: uuid.New().String(),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Tokenizer{
		partnerID:  paylaPartnerID,
		merchantID: partnerMerchantID,
		env:        env,
		token:      fmt.Sprintf("%s_%s_%s", paylaPartnerID, partnerMerchantID, o.sessionID),
		log:        o.log,
	}
}

// SnippetToken returns the deterministic token value without driving a page.
func (t *Tokenizer) SnippetToken() string {
	return t.token
}

// GetSnippetToken loads a blank document into the surface, injects the Payla
// DCS script, and resolves the snippet token once the script initialized.
// onCompletion fires at most once.
func (t *Tokenizer) GetSnippetToken(surface webbridge.Surface, onCompletion func(token string, err error)) {
	t.done = false
	surface.SetLoadHandler(func() {
		surface.EvaluateScript(t.initCall(), func(_ any, err error) {
			if t.done {
				return
			}
			t.done = true

			switch {
			case err != nil:
				t.log.Error("fingerprinting script failed", logger.Error(err))
				onCompletion("", fmt.Errorf("%w: %v", ErrScriptFailed, err))
			case t.token == "":
				t.log.Error("fingerprinting finished without a snippet token")
				onCompletion("", ErrNoToken)
			default:
				t.log.Info("snippet token initialized")
				onCompletion(t.token, nil)
			}
		})
	})
	surface.LoadHTML(t.blankDocument())
	surface.EvaluateScript(t.injectScript(), nil)
}

func (t *Tokenizer) blankDocument() string {
	return `<!doctype html>
<html lang="en">
<body></body>
</html>`
}

// injectScript appends the partner-scoped DCS script tag and initializes it
// on load.
func (t *Tokenizer) injectScript() string {
	return fmt.Sprintf(`window.paylaDcs = window.paylaDcs || {};
var script = document.createElement('script');
script.id = 'paylaDcs';
script.type = 'text/javascript';
script.src = '%s';
script.onload = function() {
    if (typeof window.paylaDcs !== 'undefined' && window.paylaDcs.init) {
        %s
    }
    else {
        throw new Error('paylaDcs is not defined or does not have an init method.');
    }
};
document.body.appendChild(script);`,
		fmt.Sprintf(dcsScriptURLFormat, t.partnerID, t.merchantID),
		t.initCall(),
	)
}

func (t *Tokenizer) initCall() string {
	return fmt.Sprintf("paylaDcs.init(%q, %q);", t.env.FingerprintMode(), t.token)
}
