package mcu

import (
	"context"
	"sort"
	"strings"

	"github.com/reoring/mcuschema/dsl"
	js "github.com/reoring/mcuschema/jsonschema"
)

// ParseSignal builds a Signal from a <Signal> element, a mapping or a Signal.
func ParseSignal(ctx context.Context, src any) (Signal, error) { return SignalSchema.Build(ctx, src) }

// ParseCondition builds a Condition.
func ParseCondition(ctx context.Context, src any) (Condition, error) {
	return ConditionSchema.Build(ctx, src)
}

// ParsePin builds a Pin.
func ParsePin(ctx context.Context, src any) (Pin, error) { return PinSchema.Build(ctx, src) }

// ParseContextIP builds a ContextIP from a <ContextIp> element or a mapping.
func ParseContextIP(ctx context.Context, src any) (ContextIP, error) {
	return ContextIPSchema.Build(ctx, src)
}

// ParseContextSplit builds a ContextSplit.
func ParseContextSplit(ctx context.Context, src any) (ContextSplit, error) {
	return ContextSplitSchema.Build(ctx, src)
}

// ParseContextProject builds a ContextProject.
func ParseContextProject(ctx context.Context, src any) (ContextProject, error) {
	return ContextProjectSchema.Build(ctx, src)
}

// ParseIP builds an IP from an <IP> element or a mapping.
func ParseIP(ctx context.Context, src any) (IP, error) { return IPSchema.Build(ctx, src) }

// ParseVoltage builds the supply voltage range.
func ParseVoltage(ctx context.Context, src any) (Voltage, error) { return VoltageSchema.Build(ctx, src) }

// ParseCurrent builds the current consumption figures.
func ParseCurrent(ctx context.Context, src any) (Current, error) { return CurrentSchema.Build(ctx, src) }

// ParseTemperature builds the operating temperature range.
func ParseTemperature(ctx context.Context, src any) (Temperature, error) {
	return TemperatureSchema.Build(ctx, src)
}

// ParseGenTypeFirmware builds a GenTypeFirmware from a <GentypeFirmware> element or a mapping.
func ParseGenTypeFirmware(ctx context.Context, src any) (GenTypeFirmware, error) {
	return GenTypeFirmwareSchema.Build(ctx, src)
}

// ParseContext builds a Context.
func ParseContext(ctx context.Context, src any) (Context, error) { return ContextSchema.Build(ctx, src) }

// ParseMCU builds the top-level record of a description file from its root
// element or from a mapping.
func ParseMCU(ctx context.Context, src any) (MCU, error) { return MCUSchema.Build(ctx, src) }

// Entry exposes one catalog type without its Go type, for tools that pick
// the type at run time.
type Entry struct {
	Name   string
	Tag    string
	Fields []string
	Build  func(ctx context.Context, src any) (any, error)
	Schema func() *js.Schema
}

func entry[T any](name string, r *dsl.Record[T]) Entry {
	return Entry{
		Name:   name,
		Tag:    r.Name(),
		Fields: r.FieldNames(),
		Build: func(ctx context.Context, src any) (any, error) {
			v, err := r.Build(ctx, src)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		Schema: func() *js.Schema {
			s := r.JSONSchema()
			s.SchemaURI = js.Draft
			return s
		},
	}
}

var catalog = map[string]Entry{}

func init() {
	for _, e := range []Entry{
		entry("signal", SignalSchema),
		entry("condition", ConditionSchema),
		entry("pin", PinSchema),
		entry("contextip", ContextIPSchema),
		entry("contextsplit", ContextSplitSchema),
		entry("contextproject", ContextProjectSchema),
		entry("ip", IPSchema),
		entry("voltage", VoltageSchema),
		entry("current", CurrentSchema),
		entry("temperature", TemperatureSchema),
		entry("gentypefirmware", GenTypeFirmwareSchema),
		entry("context", ContextSchema),
		entry("mcu", MCUSchema),
	} {
		catalog[e.Name] = e
	}
}

// Lookup returns the catalog entry with the given name, case-insensitively.
func Lookup(name string) (Entry, bool) {
	e, ok := catalog[strings.ToLower(name)]
	return e, ok
}

// Names returns the sorted catalog type names.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
