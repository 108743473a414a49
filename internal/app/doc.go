// Package app wires application dependencies for the CLI and the panel daemon.
//
// It loads Config from YAML and the environment, builds the logger, and
// constructs the state store, base dictionary, executor and services,
// exposing them via the Wire struct for commands to use.
package app
