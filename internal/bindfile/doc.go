// Package bindfile loads binding declarations from YAML or TOML files.
//
// A binding file lists views by type name. Each view lists members, named by
// their field path on the view, and each member lists one or more bindings:
//
//	version: "1"
//	culture: en
//	views:
//	  - name: CustomerForm
//	    members:
//	      - name: NameBox
//	        bindings:
//	          - direction: TwoWay
//	            model: Name
//	            control: Text
//	            event: Change
//	      - name: PriceBox
//	        bindings:
//	          - direction: OneWay
//	            model: Price
//	            control: Text
//	            converter: string_format
//	            parameter: "%.2f"
//	      - name: Cells
//	        bindings:
//	          - direction: OneWay
//	            model: Totals
//	            model_index: 2
//	            control: Value
//
// Indices accept a scalar or a list. Converter names and enum parameters
// refer to entries of a convert.Registry.
//
// Validate reports every problem as a diagnostic. Compile turns a valid file
// into a Set, which serves as a binder.Discoverer.
package bindfile
