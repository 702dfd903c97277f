// Package crypto exposes the minimal primitives used by the fairness protocol.
//
// Contents
//
//   - Uniform integer sampling from a secure source without modulo bias
//     (UniformInt)
//   - Secret key generation for commitments (NewKey)
//   - Keyed commitment tags, HMAC-SHA3-256 over the decimal value
//     (CommitmentTag)
//   - Lowercase hex encoding for published tags and keys (Hex)
//   - Best-effort memory wiping for revealed keys (Zero)
//
// # Notes
//
// Every function that draws randomness takes the source explicitly so tests
// can substitute a deterministic reader. A failing source is always an error;
// there is no fallback to a weaker generator, since that would void the
// fairness guarantee.
package crypto
