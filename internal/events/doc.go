// Package events implements asynchronous event dispatch for the
// authentication engine.
//
// The engine emits structured [Event] values on authentication, revocation,
// and registration outcomes. A [Dispatcher] forwards them to a [Sink] on a
// background goroutine so that emission never blocks a request path. Sinks
// are best-effort by contract: a sink failure is swallowed (and at most
// logged), never surfaced to the operation that produced the event.
//
// # What this package must NOT do
//
//   - Import the root package or any sibling package.
//   - Block request goroutines: Emit with DropIfFull set must return
//     immediately when the buffer is full.
package events
