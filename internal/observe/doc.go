// Package observe provides the notification primitives the binding engine
// subscribes to.
//
// Key capabilities:
//   - Notifier: model-side property change stream ("which property changed")
//   - EventSource: control-side named events ("Change", "Click", ...)
//   - Indexable: explicit capability for collection-like property values
//   - PropertyChanged, Events, List and Map: ready-made implementations
//
// Delivery is synchronous and re-entrant. Handlers run inline on the
// goroutine that raised the notification, and a handler that mutates another
// observed value causes nested delivery. Cyclic graphs are not guarded.
package observe
