// Package config loads SDK configuration structs from environment variables.
//
// Load reads an optional .env file once per process, then parses env-tagged
// struct fields. It exists so tools and demo apps wiring the SDK share one
// way of loading credentials.
//
// # Usage
//
//	type Credentials struct {
//	    MID          string `env:"PAYONE_MID,required"`
//	    PortalKey    string `env:"PAYONE_PMI_PORTAL_KEY,required"`
//	    Environment  string `env:"PAYONE_ENVIRONMENT" envDefault:"test"`
//	}
//
//	var creds Credentials
//	if err := config.Load(&creds); err != nil {
//	    // missing or malformed variables
//	}
package config
