package cardtokenizer

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"strings"

	"github.com/dmitrymomot/payonekit/pkg/environment"
)

// Wire constants of the creditcardcheck request. The remote endpoint verifies
// the hash against these exact values; changing any of them produces a hash
// the server silently rejects.
const (
	apiVersion      = "3.11"
	requestEncoding = "UTF-8"
	requestKind     = "creditcardcheck"
	responseType    = "JSON"
	storeCardData   = "yes"
)

// Request identifies the merchant account for a creditcardcheck call. The
// hash is derived at construction; the PMI portal key used to compute it is
// not retained.
type Request struct {
	MID         string
	AID         string
	PortalID    string
	Environment environment.Environment

	// Hash is the base64 HMAC-SHA512 signature over the request values.
	Hash string
}

// NewRequest builds a signed creditcardcheck request. The environment decides
// the mode code signed into the hash, so a Request is only valid for the
// environment it was built with.
func NewRequest(mid, aid, portalID string, env environment.Environment, pmiPortalKey string) Request {
	return Request{
		MID:         mid,
		AID:         aid,
		PortalID:    portalID,
		Environment: env,
		Hash:        signRequest(mid, aid, portalID, env.TokenizerMode(), pmiPortalKey),
	}
}

// signRequest computes the keyed hash the PAYONE client API expects: the
// request values concatenated in fixed order with the portal key appended,
// HMAC-SHA512 keyed by the same portal key, base64-encoded raw digest.
func signRequest(mid, aid, portalID, mode, pmiPortalKey string) string {
	message := strings.Join([]string{
		aid,
		apiVersion,
		requestEncoding,
		mid,
		mode,
		portalID,
		requestKind,
		responseType,
		storeCardData,
	}, "") + pmiPortalKey

	mac := hmac.New(sha512.New, []byte(pmiPortalKey))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
