package cardtokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/payonekit/pkg/cardtokenizer"
	"github.com/dmitrymomot/payonekit/pkg/environment"
)

func TestNewRequestHash(t *testing.T) {
	t.Parallel()

	// Reference vectors verified against the PAYONE client-API hash scheme:
	// HMAC-SHA512 over aid+"3.11"+"UTF-8"+mid+mode+portalid+"creditcardcheck"+
	// "JSON"+"yes"+key, keyed by the portal key, base64-encoded.
	tests := []struct {
		name     string
		mid      string
		aid      string
		portalID string
		env      environment.Environment
		key      string
		want     string
	}{
		{
			name:     "test environment golden vector",
			mid:      "12345",
			aid:      "67890",
			portalID: "2233445",
			env:      environment.Test,
			key:      "pmi-portal-key",
			want:     "GAi1iP6BlQsHhhEsxQyq8OWr3lH7GjtkXLVjv0e3F6TLcssouiwrvd8r3B9g9axYnJPGlbP+kjs5ruHV3iSk2g==",
		},
		{
			name:     "production environment changes the hash",
			mid:      "12345",
			aid:      "67890",
			portalID: "2233445",
			env:      environment.Production,
			key:      "pmi-portal-key",
			want:     "zNHaj/+olXMZHrkuWxKO07EVBxqKn4mitnm4v2fCyBHmmrnAXAdUnv9DibrOjIZJk7IFVZebBjnB6YFI2vPuTA==",
		},
		{
			name:     "different mid changes the hash",
			mid:      "12346",
			aid:      "67890",
			portalID: "2233445",
			env:      environment.Test,
			key:      "pmi-portal-key",
			want:     "s/xsGjdkB43uGguUKiJ4KK8N7EXUeO8ZhJr27rcPwJiiiNJ06TwcmpWI2J9dOfb+ayYWUP/hK/i7l13qkKnrYQ==",
		},
		{
			name:     "different aid changes the hash",
			mid:      "12345",
			aid:      "67891",
			portalID: "2233445",
			env:      environment.Test,
			key:      "pmi-portal-key",
			want:     "Mi03xV5FtHv+5m+mVlP1vGOwIdEewOjLeiMKOJ5/FVUrhwaFebD0RXZkSxdskTGW8kpA8DCNjTcJ2JDAMDM5DA==",
		},
		{
			name:     "different portal id changes the hash",
			mid:      "12345",
			aid:      "67890",
			portalID: "2233446",
			env:      environment.Test,
			key:      "pmi-portal-key",
			want:     "wIomq2kpwqdTsDmpQXDuEeZK4pGf4wd6CrluYygKKUznlVkiAOgDu5+9rR+0SG+sFt+ENJ5wNCiLRFsyw//dlg==",
		},
		{
			name:     "different portal key changes the hash",
			mid:      "12345",
			aid:      "67890",
			portalID: "2233445",
			env:      environment.Test,
			key:      "other-key",
			want:     "xptXZZnyO2wznqDj9nb555S3UT3xfSxviPHbbvZc1ghl5SLUEo+Y4/bbgTxKsLGyFVQcy/nQdgdtoHyeS0sslQ==",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := cardtokenizer.NewRequest(tt.mid, tt.aid, tt.portalID, tt.env, tt.key)
			assert.Equal(t, tt.want, req.Hash)
		})
	}
}

func TestNewRequestDeterministic(t *testing.T) {
	t.Parallel()

	a := cardtokenizer.NewRequest("12345", "67890", "2233445", environment.Test, "pmi-portal-key")
	b := cardtokenizer.NewRequest("12345", "67890", "2233445", environment.Test, "pmi-portal-key")

	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, "12345", a.MID)
	assert.Equal(t, "67890", a.AID)
	assert.Equal(t, "2233445", a.PortalID)
	assert.Equal(t, environment.Test, a.Environment)
}
