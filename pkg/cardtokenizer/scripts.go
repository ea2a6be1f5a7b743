package cardtokenizer

import (
	"fmt"
	"strings"
)

// hostedScriptURL points at the PAYONE client-API script that renders the
// hosted iframes and performs the creditcardcheck inside the page.
const hostedScriptURL = "https://secure.prelive.pay1-test.de/client-api/js/v1/payone_hosted_min.js"

const hostedScriptElementID = "payone-hosted-script"

// loadHostedScript appends the PAYONE script tag to the page head and wires
// its load/error DOM events to the scriptLoaded/scriptError channels. The
// trailing null keeps the script's completion value serializable for hosts
// that reject undefined results.
func (t *Tokenizer) loadHostedScript() string {
	return fmt.Sprintf(`if (!document.getElementById('%s')) {
    const script = document.createElement('script');
    script.type = 'text/javascript';
    script.src = '%s';
    script.id = '%s';
    script.onload = function() {
        %s
    }
    script.onerror = function() {
        %s
    }
    document.head.appendChild(script);
}
null`,
		hostedScriptElementID,
		hostedScriptURL,
		hostedScriptElementID,
		ScriptMessageLoaded.PostMessageScript(`"Script loaded."`),
		ScriptMessageError.PostMessageScript(`"Failed to load PAYONE script."`),
	)
}

func (t *Tokenizer) populatePage() string {
	return PopulationScript(t.request, t.config, t.supportedCardTypes)
}

// PopulationScript renders the script that builds the hosted-fields widget:
// the field/style/language configuration, the signed request, the
// submit-control click wiring, and the window.Payone.ClientApi.HostedIFrames
// construction. Exposed so integrators can inspect what the tokenizer will
// inject into their page.
func PopulationScript(req Request, cfg Config, supportedCardTypes []CardType) string {
	return fmt.Sprintf(`var supportedCardtypes = %s
var config = {
    fields: {
        cardpan: %s,
        cardcvc2: %s,
        cardexpiremonth: %s,
        cardexpireyear: %s
    },
    defaultStyle: {
        %s
    },
    autoCardtypeDetection: {
        supportedCardtypes: supportedCardtypes,
        callback: function(detectedCardtype) {
            var out = document.getElementById('autodetectionResponsePre');
            if (out) {
                out.innerHTML = detectedCardtype;
            }
        }
    },
    language: %s,
    error: %q
};
var request = {
    request: '%s',
    responsetype: '%s',
    mode: '%s',
    mid: '%s',
    aid: '%s',
    portalid: '%s',
    encoding: '%s',
    storecarddata: '%s',
    hash: '%s'
};
document.getElementById('%s').onclick = function() {
    %s
};

var iframes = new window.Payone.ClientApi.HostedIFrames(config, request);
window.payoneIFrames = iframes;
;null`,
		renderCardTypes(supportedCardTypes),
		cfg.CardPan.renderObject(),
		cfg.CardCVC2.renderObject(),
		cfg.CardExpireMonth.renderObject(),
		cfg.CardExpireYear.renderObject(),
		cfg.renderDefaultStyles(),
		cfg.Language.scriptValue(),
		cfg.Error,
		requestKind,
		responseType,
		req.Environment.TokenizerMode(),
		req.MID,
		req.AID,
		req.PortalID,
		requestEncoding,
		storeCardData,
		req.Hash,
		cfg.SubmitButtonID,
		ScriptMessageSubmitClicked.PostMessageScript(`""`),
	)
}

// initiateCheck triggers the widget's creditcardcheck with a callback that
// posts the flat result map on the responseReceived channel.
func (t *Tokenizer) initiateCheck() string {
	return fmt.Sprintf(`var iframes = window.payoneIFrames;

function payCallback(response) {
    %s
}

iframes.creditCardCheck('payCallback');`,
		ScriptMessageResponse.PostMessageScript("response"),
	)
}

// elementExists probes the DOM for an element id; evaluates to a bool.
func elementExists(elementID string) string {
	return fmt.Sprintf("document.querySelector('#%s') !== null", elementID)
}

func renderCardTypes(types []CardType) string {
	quoted := make([]string, len(types))
	for i, ct := range types {
		quoted[i] = fmt.Sprintf("%q", string(ct))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
