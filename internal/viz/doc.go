// Package viz renders the agency landing page in the terminal.
//
//   - [App]: the Bubble Tea landing page with a navigation bar
//   - [Terminal]: the animated typewriter window, usable on its own
//   - [PlainRenderer]: ANSI redraws for non-interactive playback
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Tab/→   - Next section
//	S-Tab/← - Previous section
//	R       - Restart the terminal script
//	T       - Cycle color themes
//	C       - Cycle blog categories
//	?       - Show help
//	Q       - Quit
package viz
