// Package config loads client configuration and persists user settings.
//
// LoadConfig reads a YAML file and environment variables into a struct
// with Viper. Variables prefixed with the upper-cased application name
// override file values, with underscores matching nesting:
// PICACG_HTTP_TIMEOUT sets http.timeout.
//
// Store keeps the settings the client needs between runs, the session
// token and the image server, in <dir>/config.json.
package config
