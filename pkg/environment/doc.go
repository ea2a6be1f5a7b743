// Package environment defines the PAYONE platform environment the SDK runs
// against and the short mode codes each platform service expects.
//
// The credit-card tokenizer and the device-fingerprint snippet use different
// mode identifiers for the same environment, so the type exposes one accessor
// per service instead of a single string.
//
// # Usage
//
//	import "github.com/dmitrymomot/payonekit/pkg/environment"
//
//	env := environment.Test
//	env.TokenizerMode()   // "test"
//	env.FingerprintMode() // "t"
package environment
