// Package cli assembles the oai-dc-mapper command tree. Each subcommand
// lives in its own package under cmd/ with its flags in options.go; the root
// command loads the configuration and hands it to subcommands through the
// command context (see package env).
package cli
