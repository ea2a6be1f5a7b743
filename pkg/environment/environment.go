package environment

// Environment selects which PAYONE platform endpoints the SDK talks to.
type Environment string

const (
	// Test for the PAYONE test environment.
	Test Environment = "test"
	// Production for the PAYONE production environment.
	Production Environment = "production"
)

// TokenizerMode returns the mode code embedded in signed creditcardcheck
// requests. Unknown values fall back to the test mode so a misconfigured
// client can never hit production by accident.
func (e Environment) TokenizerMode() string {
	if e == Production {
		return "prod"
	}
	return "test"
}

// FingerprintMode returns the mode code passed to the Payla snippet init call.
func (e Environment) FingerprintMode() string {
	if e == Production {
		return "p"
	}
	return "t"
}

// Valid reports whether the value is one of the known environments.
func (e Environment) Valid() bool {
	return e == Test || e == Production
}
