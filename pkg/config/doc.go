// Package config loads typed configuration structs from environment
// variables, with optional .env support for local development.
//
// Required settings are declared with the `env:"NAME,required"` tag, so a
// missing connection string or secret fails at startup with a clear error
// instead of deep inside a request path.
package config
