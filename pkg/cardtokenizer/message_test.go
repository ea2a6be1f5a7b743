package cardtokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/payonekit/pkg/cardtokenizer"
)

func TestPostMessageScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  cardtokenizer.ScriptMessage
		body string
		want string
	}{
		{
			name: "script loaded",
			msg:  cardtokenizer.ScriptMessageLoaded,
			body: `"Script loaded."`,
			want: `window.webkit.messageHandlers.scriptLoaded.postMessage("Script loaded.");`,
		},
		{
			name: "script error",
			msg:  cardtokenizer.ScriptMessageError,
			body: `"failed"`,
			want: `window.webkit.messageHandlers.scriptError.postMessage("failed");`,
		},
		{
			name: "submit button clicked",
			msg:  cardtokenizer.ScriptMessageSubmitClicked,
			body: `""`,
			want: `window.webkit.messageHandlers.submitButtonClicked.postMessage("");`,
		},
		{
			name: "response received with identifier body",
			msg:  cardtokenizer.ScriptMessageResponse,
			body: "response",
			want: `window.webkit.messageHandlers.responseReceived.postMessage(response);`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.msg.PostMessageScript(tt.body))
		})
	}
}

func TestCardTypeIdentifiers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cardtokenizer.CardType("V"), cardtokenizer.CardTypeVisa)
	assert.Equal(t, cardtokenizer.CardType("M"), cardtokenizer.CardTypeMastercard)
	assert.Equal(t, cardtokenizer.CardType("A"), cardtokenizer.CardTypeAmericanExpress)
	assert.Equal(t, cardtokenizer.CardType("D"), cardtokenizer.CardTypeDinersClub)
	assert.Equal(t, cardtokenizer.CardType("J"), cardtokenizer.CardTypeJCB)
	assert.Equal(t, cardtokenizer.CardType("O"), cardtokenizer.CardTypeMaestroInternational)
	assert.Equal(t, cardtokenizer.CardType("P"), cardtokenizer.CardTypeChinaUnionPay)
	assert.Equal(t, cardtokenizer.CardType("U"), cardtokenizer.CardTypeUATP)
	assert.Equal(t, cardtokenizer.CardType("G"), cardtokenizer.CardTypeGirocard)
}
