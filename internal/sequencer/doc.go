// Package sequencer animates a script as if it were typed into a
// terminal, one character at a time, looping forever.
//
// The package has two layers:
//
//   - [Machine]: the state machine. It holds the completed lines and the
//     cursor, reports which delay precedes its next transition and
//     applies one transition per [Machine.Advance]. It owns no timers.
//   - [Sequencer]: drives a Machine with a [clock.Clock]. It keeps
//     exactly one timer pending, publishes a [Transcript] after every
//     transition and restarts on [Sequencer.Reset] when the epoch
//     changes.
//
// # States
//
//	Typing(i, j) --char delay--> Typing(i, j+1)
//	Typing(i, len) = LineComplete(i) --line delay--> Typing(i+1, 0)
//	LineComplete(last) --line delay--> ScriptComplete
//	ScriptComplete --loop delay--> Typing(0, 0)
//
// Any state moves to Typing(0, 0) on a reset with a new epoch.
package sequencer
