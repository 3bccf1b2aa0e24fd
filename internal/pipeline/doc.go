// Package pipeline steps a Scene through its frame sequence and calls a
// visit callback once per frame, in index order, from a single goroutine.
//
// The loop is deliberately synchronous: each frame's trails build on the
// previous frame's, so there is nothing to fan out. Cancellation is the only
// way a run stops early.
package pipeline
