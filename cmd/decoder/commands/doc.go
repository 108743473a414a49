// Package commands defines the decoder CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list      List entries, optionally filtered with --query
//   - count     Print the number of entries
//   - add       Add or override an entry
//   - edit      Change the decoded text of an existing entry
//   - remove    Remove an entry; bundled entries stay hidden until re-added
//   - import    Merge entries from a JSON file or URL
//   - export    Write the merged dictionary as JSON
//   - apply     Decode the active browser page or --file
//   - restore   Reload the page, discarding substitutions
//   - decode    Print a decoded copy of an HTML file or URL
//
// # Implementation
//
// The root command loads config, builds the logger and the dependency graph
// (state store, dictionary, executor) before any subcommand runs. Each
// command ends by printing a one-line status.
package commands
