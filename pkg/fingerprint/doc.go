// Package fingerprint produces the Payla device-fingerprint snippet token a
// merchant server needs for fraud-scored transactions.
//
// The tokenizer loads a blank document into a hidden web surface, injects the
// partner-scoped Payla DCS script, and initializes it with a deterministic
// snippet token of the form {partnerID}_{merchantID}_{sessionID}. The token
// value itself is known up front; the page round-trip exists so the script
// can collect device signals under that token before the server references it.
//
// # Usage
//
//	tok := fingerprint.New("PAYLA_PARTNER_ID", "MERCHANT_ID", environment.Test)
//	tok.GetSnippetToken(surface, func(token string, err error) {
//	    if err != nil {
//	        // script failed to initialize
//	        return
//	    }
//	    // forward token to the merchant server
//	})
package fingerprint
