// Package dsl declares record schema tables and builds typed records from
// them.
//
// A table lists, for a Go struct T, the element tag it is read from and its
// fields. Each field has a name (matched case-insensitively against attribute
// names, child element tags and mapping keys), a converter for the raw value,
// and whether it repeats:
//
//	var PinSchema = dsl.RecordOf[Pin]("Pin").Fields(
//		dsl.One("name", dsl.String(), func(p *Pin) *mcuschema.Optional[string] { return &p.Name }),
//		dsl.One("type", dsl.Enum(PinTypes...), func(p *Pin) *mcuschema.Optional[PinType] { return &p.Type }),
//		dsl.Many("signal", dsl.Nested(SignalSchema), func(p *Pin) *[]Signal { return &p.Signals }),
//	).MustBuild()
//
//	pin, err := PinSchema.Build(ctx, node)
//
// Converters
//   - String, Bool, Int, Float: scalar tokens. Bool accepts the tokens in
//     TrueTokens and FalseTokens.
//   - Enum: member names compared after NormalizeEnumToken.
//   - List: comma-separated lists or sequences.
//   - Text: reads the character data of a child element.
//   - Nested: builds a nested record from a child element or mapping.
//   - Func: custom conversion.
//
// Build runs in two passes. The first groups source occurrences by field and
// converts them, failing on unknown names (strict mode) or conversion errors.
// The second checks cardinality and value types and only then writes the
// result, so a failed build never yields a partial record. Strictness and the
// diagnostics logger come from mcuschema.OptionsFrom(ctx).
//
// Error paths are JSON Pointers relative to the record being built, for
// example /pin/3/signal/0/ioModes.
package dsl
