// Package webbridge defines the boundary between the SDK and an embedded web
// page surface (a platform webview or an equivalent host).
//
// The tokenizer packages never link against a concrete webview. They drive a
// Surface: load a document, evaluate scripts in it, and receive the named
// messages the page posts back through the host's message-handler namespace.
// A platform integration implements Surface once; everything above it stays
// platform-free and testable.
//
// # Delivery contract
//
// Implementations must deliver all callbacks — load completion, script
// evaluation results, and inbound messages — on a single goroutine, in the
// order the underlying events occurred. Consumers rely on this and do not
// lock their own state.
//
// RegisterMessageHandler replaces any handler previously registered for the
// same channel name, so there is never more than one active subscription per
// channel.
//
// # Testing
//
// The webbridgetest subpackage ships a scripted in-memory Surface used by the
// cardtokenizer and fingerprint test suites.
package webbridge
