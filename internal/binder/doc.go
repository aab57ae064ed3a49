// Package binder applies and detaches every binding declared on a view as a
// unit.
//
// Bindings are declared explicitly rather than discovered by scanning
// metadata. A view either implements Declarer, or a declaration function is
// registered for its type in a Registry. Any other Discoverer, such as one
// compiled from a binding file, can be plugged in with WithDiscoverer.
//
//	b := binder.New(view, model)
//	if err := b.Apply(); err != nil {
//		return err
//	}
//	defer b.Detach()
//
// Apply is all-or-nothing: if any binding fails, the bindings already made
// by that call are torn down before the error is returned.
package binder
