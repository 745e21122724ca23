// Package tui provides the terminal interface of the swarm data chooser.
//
// The interface is a Bubble Tea program split the usual way:
//
//   - model/ holds state: the chooser, which tree nodes are expanded or
//     marked, the nearest-channel pane, overlays and the status bar.
//   - controller/ turns messages into state changes. Key presses, window
//     resizes, finished listings, nearest results and log entries all arrive
//     here, on the single Update goroutine.
//   - view/ renders the model.
//
// # Message Flow
//
// Listing a source and ranking nearest channels never happen inside Update.
// The controller asks the chooser for a task, wraps it in a tea.Cmd, and the
// result comes back as a message that is applied to the tree in Update. The
// chooser itself is only touched from Update, so it needs no locking.
//
//  1. The user expands an unopened source.
//  2. chooser.Expand moves it to Opening and returns a FetchTask.
//  3. model.FetchCmd runs the task on a Bubble Tea goroutine.
//  4. A ListingResultMsg reaches Update and chooser.ApplyListing fills the
//     subtree, or marks the source broken and collapses it.
package tui
