// Package app wires application dependencies for the CLI.
//
// It builds the game session from a validated dice set and Config,
// exposing it via the App struct for commands to use.
package app
