// Package viz replays recorded traces in the terminal.
//
// The player is a Bubble Tea model over any frame type:
//
//   - [NewArrayPlayer]: sort and search traces drawn as coloured bars
//   - [NewGraphPlayer]: BFS/DFS visits over an adjacency listing
//   - [NewTreePlayer]: traced BST inserts and deletes drawn sideways
//   - [NewMenu]: preset picker that launches one of the above
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	[ ]   - Step one frame back/forward (pauses)
//	R     - Rewind to the first frame
//	+ -   - Faster/slower
//	T     - Cycle color themes
//	Q     - Quit
package viz
