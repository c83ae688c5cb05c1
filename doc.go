// Package mcuschema builds strongly typed, validated records from
// hierarchical documents (XML element trees) or flat mappings (decoded JSON,
// YAML or Go maps) according to declarative schema tables.
//
//   - The root package holds the public vocabulary: Node and Element (the
//     read-only document view), Mapping, Issues (the error model), BuildOpt
//     (strict vs permissive), Optional and Decoded/PresenceMap.
//   - dsl/ holds the primitive converters and the generic record builder
//     (dsl.RecordOf[T]) that interprets a schema table.
//   - mcu/ is the STM32 microcontroller schema catalog built on dsl.
//   - source/ holds document drivers (encoding/xml, go-json, yaml.v3); the
//     token engine and its enforcement live under internal/engine.
//   - cmd/mcuimport is the command line importer.
//
// Typical usage:
//
//	root, err := mcuschema.ReadXMLFile("mcu/STM32F030C6Tx.xml")
//	ctx = mcuschema.WithOptions(ctx, mcuschema.BuildOpt{Mode: mcuschema.ModeStrict})
//	m, err := mcu.ParseMCU(ctx, root)
//
//	pin, err := mcu.ParsePin(ctx, mcuschema.Mapping{"name": "PA0", "type": "I/O"})
package mcuschema
