// Package mcu is the schema catalog for STM32 microcontroller description
// files (the st-open-pins "mcu/*.xml" set): one record type and one dsl table
// per element kind, from <Signal> up to the <Mcu> root.
//
// Every type can be built from its XML element, from a flat mapping, or
// passed through when already typed:
//
//	root, _ := mcuschema.ReadXMLFile("STM32F030C6Tx.xml")
//	m, err := mcu.ParseMCU(ctx, root)
//
//	pin, err := mcu.ParsePin(ctx, mcuschema.Mapping{"name": "PA0", "type": "I/O"})
//
// Lookup and Names give untyped access to the catalog by name.
package mcu
