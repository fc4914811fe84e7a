// Package config loads the tool configuration.
//
// Values are layered with koanf, lowest precedence first: built-in
// defaults, the configuration file (unwrapgen.yaml), UNWRAPGEN_*
// environment variables and explicitly set command-line flags.
//
// Nested keys use a double underscore in environment variables:
// UNWRAPGEN_POLICY__AUTO_NAME=true sets policy.auto_name.
package config
