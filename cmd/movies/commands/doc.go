// Package commands defines the movies CLI.
//
// Commands
//
//   - serve          Run the HTTP API (default when no command is given)
//   - migrate        Apply database migrations and print the schema version
//   - user create    Create an account from the command line
//
// Every command loads configuration the same way the server does: environment
// variables, optionally layered over the YAML file given with --config.
package commands
