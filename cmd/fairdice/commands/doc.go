// Package commands defines the fairdice CLI.
//
// Commands
//
//   - fairdice <die> <die> <die> ...  Play one game over the given dice
//   - verify <hmac> <value> <key>     Check a revealed commitment offline
//
// # Implementation
//
// The root command validates the positional dice arguments, wires the
// session dependencies (secure random source, stdin/stdout, the odds table
// renderer) and runs the game. An explicit exit request from the player is
// normal completion; malformed dice arguments abort before gameplay with
// the usage example.
package commands
