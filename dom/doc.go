// Package dom is an in-memory DOM over golang.org/x/net/html nodes.
//
// It provides elements, text nodes, class lists and event targets with
// the capture, target and bubble dispatch of the DOM standard. A Document
// owns the event listeners of the nodes it wraps; listeners run
// synchronously on the goroutine that dispatches the event.
//
// Nodes are not safe for concurrent mutation, only the listener tables
// are guarded so that a cancelled AddEventListenerOptions.Signal can
// remove its listener from another goroutine.
package dom
