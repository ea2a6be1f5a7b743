package cardtokenizer

import (
	"encoding/json"
	"fmt"
)

// Response is the decoded creditcardcheck result. Status is always set; the
// remaining fields are populated depending on whether the check succeeded or
// failed, since both outcomes arrive with the same shape.
type Response struct {
	Status           string `json:"status"`
	CardType         string `json:"cardtype,omitempty"`
	CardExpireDate   string `json:"cardexpiredate,omitempty"`
	PseudoCardPAN    string `json:"pseudocardpan,omitempty"`
	TruncatedCardPAN string `json:"truncatedcardpan,omitempty"`
	ErrorCode        string `json:"errorcode,omitempty"`
	ErrorMessage     string `json:"errormessage,omitempty"`
}

// DecodeResponse turns the raw responseReceived message body into a typed
// Response. The body must be a string-keyed map whose values are strings or
// explicit nulls; a null value and a missing key both leave the field unset.
// Every structural failure, including a missing status, collapses to
// ErrInvalidResponse — there is no partial-success path.
func DecodeResponse(body any) (*Response, error) {
	fields, err := stringFields(body)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if resp.Status == "" {
		return nil, fmt.Errorf("%w: missing status", ErrInvalidResponse)
	}
	return &resp, nil
}

// stringFields validates the dynamic message body shape and flattens it to a
// plain string map, dropping explicit nulls.
func stringFields(body any) (map[string]string, error) {
	switch m := body.(type) {
	case map[string]string:
		return m, nil
	case map[string]any:
		fields := make(map[string]string, len(m))
		for k, v := range m {
			switch val := v.(type) {
			case string:
				fields[k] = val
			case nil:
				// present-but-null, same as absent
			default:
				return nil, fmt.Errorf("%w: non-string value for %q", ErrInvalidResponse, k)
			}
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("%w: body is not a string map", ErrInvalidResponse)
	}
}
