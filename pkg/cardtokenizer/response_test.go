package cardtokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payonekit/pkg/cardtokenizer"
)

func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	t.Run("successful check", func(t *testing.T) {
		t.Parallel()

		resp, err := cardtokenizer.DecodeResponse(map[string]any{
			"status":           "VALID",
			"cardtype":         "V",
			"pseudocardpan":    "9410010000000306644",
			"truncatedcardpan": "411111xxxxxx1111",
			"cardexpiredate":   "2601",
		})
		require.NoError(t, err)
		assert.Equal(t, "VALID", resp.Status)
		assert.Equal(t, "V", resp.CardType)
		assert.Equal(t, "9410010000000306644", resp.PseudoCardPAN)
		assert.Equal(t, "411111xxxxxx1111", resp.TruncatedCardPAN)
		assert.Equal(t, "2601", resp.CardExpireDate)
		assert.Empty(t, resp.ErrorCode)
		assert.Empty(t, resp.ErrorMessage)
	})

	t.Run("failed check carries error fields", func(t *testing.T) {
		t.Parallel()

		resp, err := cardtokenizer.DecodeResponse(map[string]any{
			"status":       "ERROR",
			"errorcode":    "1078",
			"errormessage": "Expiry date invalid, incorrect or in the past",
		})
		require.NoError(t, err)
		assert.Equal(t, "ERROR", resp.Status)
		assert.Equal(t, "1078", resp.ErrorCode)
		assert.Equal(t, "Expiry date invalid, incorrect or in the past", resp.ErrorMessage)
		assert.Empty(t, resp.PseudoCardPAN)
	})

	t.Run("explicit null equals missing", func(t *testing.T) {
		t.Parallel()

		resp, err := cardtokenizer.DecodeResponse(map[string]any{
			"status":   "VALID",
			"cardtype": nil,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.CardType)
	})

	t.Run("plain string map accepted", func(t *testing.T) {
		t.Parallel()

		resp, err := cardtokenizer.DecodeResponse(map[string]string{"status": "VALID"})
		require.NoError(t, err)
		assert.Equal(t, "VALID", resp.Status)
	})

	t.Run("missing status", func(t *testing.T) {
		t.Parallel()

		_, err := cardtokenizer.DecodeResponse(map[string]any{"wrong": "value"})
		assert.ErrorIs(t, err, cardtokenizer.ErrInvalidResponse)
	})

	t.Run("null status", func(t *testing.T) {
		t.Parallel()

		_, err := cardtokenizer.DecodeResponse(map[string]any{"status": nil})
		assert.ErrorIs(t, err, cardtokenizer.ErrInvalidResponse)
	})

	t.Run("non-string value", func(t *testing.T) {
		t.Parallel()

		_, err := cardtokenizer.DecodeResponse(map[string]any{"status": 200})
		assert.ErrorIs(t, err, cardtokenizer.ErrInvalidResponse)
	})

	t.Run("body is not a map", func(t *testing.T) {
		t.Parallel()

		_, err := cardtokenizer.DecodeResponse("VALID")
		assert.ErrorIs(t, err, cardtokenizer.ErrInvalidResponse)
	})

	t.Run("nil body", func(t *testing.T) {
		t.Parallel()

		_, err := cardtokenizer.DecodeResponse(nil)
		assert.ErrorIs(t, err, cardtokenizer.ErrInvalidResponse)
	})
}
