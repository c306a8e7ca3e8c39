// Package workers provides abstractions for managing and running
// background workers in the console.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutines. Stop
// blocks until the worker has fully terminated and is safe to call on a
// worker that never ran.
type Worker interface {
	Run()
	Stop()
}
