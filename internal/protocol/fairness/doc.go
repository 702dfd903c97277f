// Package fairness implements the commit-then-reveal protocol used to agree
// on a random integer with a counterparty who does not trust us.
//
// # Overview
//
// One fair number is produced per exchange. The committing party (the
// computer) draws a secret 256-bit key and a uniform value in a declared
// range, then publishes HMAC-SHA3-256(key, value) before the counterparty
// contributes anything. Once the counterparty's number is fixed, the key and
// value are revealed, and both contributions are combined modulo the range
// size. Neither party can steer the result after the exchange begins, and
// the published tag pins the committing party to its original value.
//
// # Flows
//
// Committing party:
//  1. Commit draws a fresh key and a uniform value, and returns the tag
//     for publication plus an opaque Pending record.
//  2. After the counterparty's number is fixed, Reveal returns the value
//     and key verbatim.
//  3. Combine folds both contributions into the agreed result.
//
// Counterparty:
//  1. Record the tag before contributing a number.
//  2. After the reveal, Verify recomputes the tag from the revealed value
//     and key and compares in constant time. A mismatch means the protocol
//     was violated.
//
// # Preconditions
//
// A Pending record backs exactly one exchange: reveal it once and discard
// it. Every Commit draws an independent key; keys are never reused across
// the exchanges of one game.
//
// # Errors
//
// Commit fails only when the secure random source fails, which is fatal to
// the session. There is no fallback source.
package fairness
