package cardtokenizer

import (
	"fmt"
	"sort"
	"strings"
)

// Field describes one card-data input injected into the hosted page. Only
// Selector and Type are required; every other attribute is omitted from the
// rendered configuration when unset, because the hosted script distinguishes
// an absent key from an empty one.
type Field struct {
	// Selector is the HTML id of the element that receives the input field.
	Selector string
	// Type is the HTML input type, e.g. "input", "text" or "password".
	Type string
	// Style holds inline CSS applied to the input.
	Style string
	// Size is the rendered size attribute of the input.
	Size string
	// MaxLength caps the number of characters the input accepts.
	MaxLength string
	// Length maps card brand codes to brand-specific input lengths, e.g.
	// a CVC of 4 digits for American Express.
	Length map[string]int
	// Iframe holds style attributes forwarded to the hosted iframe, e.g.
	// "width": "40px".
	Iframe map[string]string
}

// renderObject emits the field as the JS object literal the hosted script
// consumes. Map keys are sorted so the output is deterministic.
func (f Field) renderObject() string {
	var b strings.Builder
	fmt.Fprintf(&b, "selector: %q, type: %q", f.Selector, f.Type)

	if f.Style != "" {
		fmt.Fprintf(&b, ", style: %q", f.Style)
	}
	if f.Size != "" {
		fmt.Fprintf(&b, ", size: %q", f.Size)
	}
	if f.MaxLength != "" {
		fmt.Fprintf(&b, ", maxlength: %q", f.MaxLength)
	}
	if len(f.Length) > 0 {
		pairs := make([]string, 0, len(f.Length))
		for _, brand := range sortedKeys(f.Length) {
			pairs = append(pairs, fmt.Sprintf("%s: \"%d\"", brand, f.Length[brand]))
		}
		fmt.Fprintf(&b, ", length: { %s }", strings.Join(pairs, ", "))
	}
	if len(f.Iframe) > 0 {
		pairs := make([]string, 0, len(f.Iframe))
		for _, prop := range sortedKeys(f.Iframe) {
			pairs = append(pairs, fmt.Sprintf("%s: %q", prop, f.Iframe[prop]))
		}
		fmt.Fprintf(&b, ", iframe: { %s }", strings.Join(pairs, ", "))
	}

	return "{ " + b.String() + " }"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
