// Package game orchestrates one interactive session of the dice game.
//
// A session runs a fixed sequence: determine the first mover, bind one die
// to each party, then one fairness exchange per throw and a final
// comparison. Every random value the computer contributes goes through the
// commit-then-reveal protocol, so the transcript lets the player verify
// that nothing was steered after their input.
//
// Dependencies (random source, input, output, help renderer) are injected
// via Config; tests drive a session with a deterministic source and
// scripted input. Malformed input re-prompts in a loop, never recursively.
package game
