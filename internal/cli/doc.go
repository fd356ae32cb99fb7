// Package cli defines the Cobra command tree for python-bootstrap. The root
// command parses flags, validates the license and CI choices, then hands an
// options record to the scaffold generator. The config and help subcommands
// manage user settings and print topic help.
package cli
