// Package convergence tracks the observed chassis and host states against
// the expectation set by a transition request.
//
// The tracker is not safe for concurrent use; it is owned by the single
// goroutine that consumes notification events.
package convergence
