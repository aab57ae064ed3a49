// Package binding implements a single binding between a control property and
// a model property.
//
// A Descriptor declares the topology (Direction), the endpoints (property
// paths and optional index tuples), the control event that triggers reverse
// transfers, and an optional converter. A Binding is one live instance of a
// descriptor connecting a concrete control and model:
//
//	Unbound --Bind--> Bound --teardown--> Detached
//
// Detached is terminal. Binding again requires a new Binding.
//
// # Directions
//
//	OneTime         model -> control on bind, then on every model change*
//	OneWay          model -> control on bind and on every model change
//	OneWayToSource  control -> model on bind and on every control event
//	TwoWay          both of the above; the initial push is model -> control
//	Command         control event invokes the model's command, no transfer
//
// (*) OneTime keeps its forward subscription unless WithStrictOneTime is given.
//
// # Property paths
//
// Properties are addressed by dotted paths of exported struct fields
// ("Address.Street"), or by whatever names a PropertySource exposes. Paths
// are resolved once, at bind time; every transfer reuses the resolved
// accessors.
//
// # Errors
//
// Resolution problems (unknown property or event, missing indexer, read-only
// target) are returned by Bind as *ResolutionError. Descriptor mistakes are
// returned as *ConfigurationError before anything is resolved. Conversion
// failures (*convert.ConversionError) are returned from the transfer that
// hit them, which for change-driven transfers means from the Notify or Fire
// call that raised the change. They do not tear the binding down.
package binding
