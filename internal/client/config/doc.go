// Package config assembles the runtime settings of the Joana CLI from
// defaults, environment variables (including an optional .env file), an
// optional JSON config file, and command-line flags, in that order of
// precedence (later sources win).
package config
