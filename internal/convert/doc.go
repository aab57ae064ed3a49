// Package convert provides value converters used while transferring values
// between bound properties.
//
// A Converter is a bidirectional strategy: Convert runs on the forward leg
// (model to control), ConvertBack on the reverse leg (control to model).
// Built-in converters:
//   - Identity: passes values through unchanged
//   - StringFormat: culture-aware formatting, one-directional
//   - InverseBoolean: logical negation in both directions
//   - DoubleToInteger: float64 forward, int32 backward
//   - EnumToInt: enum to underlying integer and back by member name
//
// The Registry maps converter names to factories so declarative binding
// files can reference converters and enum types by name.
package convert
