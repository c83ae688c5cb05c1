package mcu

import (
	mcuschema "github.com/reoring/mcuschema"
	"github.com/reoring/mcuschema/dsl"
)

type opt[V any] = mcuschema.Optional[V]

var SignalSchema = dsl.RecordOf[Signal]("Signal").Fields(
	dsl.One("name", dsl.String(), func(s *Signal) *opt[string] { return &s.Name }),
	dsl.One("ioModes", dsl.List(dsl.Enum(SignalModes...)), func(s *Signal) *opt[[]SignalMode] { return &s.IOModes }),
).MustBuild()

var ConditionSchema = dsl.RecordOf[Condition]("Condition").Fields(
	dsl.One("diagnostic", dsl.String(), func(c *Condition) *opt[string] { return &c.Diagnostic }),
	dsl.One("expression", dsl.String(), func(c *Condition) *opt[string] { return &c.Expression }),
).MustBuild()

var PinSchema = dsl.RecordOf[Pin]("Pin").Fields(
	dsl.One("name", dsl.String(), func(p *Pin) *opt[string] { return &p.Name }),
	dsl.One("position", dsl.String(), func(p *Pin) *opt[string] { return &p.Position }),
	dsl.One("variant", dsl.String(), func(p *Pin) *opt[string] { return &p.Variant }),
	dsl.One("requestToSecureIP", dsl.Bool(), func(p *Pin) *opt[bool] { return &p.RequestToSecureIP }),
	dsl.One("type", dsl.Enum(PinTypes...), func(p *Pin) *opt[PinType] { return &p.Type }),
	dsl.Many("signal", dsl.Nested(SignalSchema), func(p *Pin) *[]Signal { return &p.Signals }),
	dsl.Many("condition", dsl.Nested(ConditionSchema), func(p *Pin) *[]Condition { return &p.Conditions }),
).MustBuild()

var ContextIPSchema = dsl.RecordOf[ContextIP]("ContextIp").Fields(
	dsl.One("contextName", dsl.String(), func(c *ContextIP) *opt[string] { return &c.ContextName }),
	dsl.One("forcedSelection", dsl.Bool(), func(c *ContextIP) *opt[bool] { return &c.ForcedSelection }),
	dsl.One("devalidatedOnSelect", dsl.String(), func(c *ContextIP) *opt[string] { return &c.DevalidatedOnSelect }),
	dsl.One("initializerForced", dsl.Bool(), func(c *ContextIP) *opt[bool] { return &c.InitializerForced }),
	dsl.One("defaultSelection", dsl.Bool(), func(c *ContextIP) *opt[bool] { return &c.DefaultSelection }),
	dsl.One("synchronizedContexts", dsl.List(dsl.String()), func(c *ContextIP) *opt[[]string] { return &c.SynchronizedContexts }),
).MustBuild()

var ContextSplitSchema = dsl.RecordOf[ContextSplit]("ContextSplit").Fields(
	dsl.One("name", dsl.String(), func(c *ContextSplit) *opt[string] { return &c.Name }),
	dsl.Many("contextIp", dsl.Nested(ContextIPSchema), func(c *ContextSplit) *[]ContextIP { return &c.ContextIPs }),
).MustBuild()

var ContextProjectSchema = dsl.RecordOf[ContextProject]("ContextProject").Fields(
	dsl.One("attributes", dsl.List(dsl.String()), func(c *ContextProject) *opt[[]string] { return &c.Attributes }),
	dsl.One("comment", dsl.String(), func(c *ContextProject) *opt[string] { return &c.Comment }),
	dsl.One("contexts", dsl.List(dsl.String()), func(c *ContextProject) *opt[[]string] { return &c.Contexts }),
	dsl.One("name", dsl.String(), func(c *ContextProject) *opt[string] { return &c.Name }),
).MustBuild()

var IPSchema = dsl.RecordOf[IP]("IP").Fields(
	dsl.One("name", dsl.String(), func(ip *IP) *opt[string] { return &ip.Name }),
	dsl.One("version", dsl.String(), func(ip *IP) *opt[string] { return &ip.Version }),
	dsl.One("configFile", dsl.String(), func(ip *IP) *opt[string] { return &ip.ConfigFile }),
	dsl.One("instanceName", dsl.String(), func(ip *IP) *opt[string] { return &ip.InstanceName }),
	dsl.One("clockEnableMode", dsl.String(), func(ip *IP) *opt[string] { return &ip.ClockEnableMode }),
	dsl.One("ipContextCoupling", dsl.String(), func(ip *IP) *opt[string] { return &ip.IPContextCoupling }),
	dsl.One("powerDomain", dsl.String(), func(ip *IP) *opt[string] { return &ip.PowerDomain }),
	dsl.Many("contextSplit", dsl.Nested(ContextSplitSchema), func(ip *IP) *[]ContextSplit { return &ip.ContextSplits }),
).MustBuild()

var VoltageSchema = dsl.RecordOf[Voltage]("Voltage").Fields(
	dsl.One("min", dsl.Float(), func(v *Voltage) *opt[float64] { return &v.Min }),
	dsl.One("max", dsl.Float(), func(v *Voltage) *opt[float64] { return &v.Max }),
).MustBuild()

var CurrentSchema = dsl.RecordOf[Current]("Current").Fields(
	dsl.One("lowest", dsl.Float(), func(c *Current) *opt[float64] { return &c.Lowest }),
	dsl.One("run", dsl.Float(), func(c *Current) *opt[float64] { return &c.Run }),
).MustBuild()

var TemperatureSchema = dsl.RecordOf[Temperature]("Temperature").Fields(
	dsl.One("min", dsl.Float(), func(t *Temperature) *opt[float64] { return &t.Min }),
	dsl.One("max", dsl.Float(), func(t *Temperature) *opt[float64] { return &t.Max }),
).MustBuild()

var GenTypeFirmwareSchema = dsl.RecordOf[GenTypeFirmware]("GentypeFirmware").Fields(
	dsl.One("firmwareName", dsl.String(), func(g *GenTypeFirmware) *opt[string] { return &g.FirmwareName }),
	dsl.One("genType", dsl.String(), func(g *GenTypeFirmware) *opt[string] { return &g.GenType }),
).MustBuild()

var ContextSchema = dsl.RecordOf[Context]("Context").Fields(
	dsl.One("comment", dsl.String(), func(c *Context) *opt[string] { return &c.Comment }),
	dsl.One("genType", dsl.String(), func(c *Context) *opt[string] { return &c.GenType }),
	dsl.One("core", dsl.String(), func(c *Context) *opt[string] { return &c.Core }),
	dsl.One("groupName", dsl.String(), func(c *Context) *opt[string] { return &c.GroupName }),
	dsl.One("groupShortName", dsl.String(), func(c *Context) *opt[string] { return &c.GroupShortName }),
	dsl.One("name", dsl.String(), func(c *Context) *opt[string] { return &c.Name }),
	dsl.One("shortName", dsl.String(), func(c *Context) *opt[string] { return &c.ShortName }),
	dsl.One("longName", dsl.String(), func(c *Context) *opt[string] { return &c.LongName }),
	dsl.One("secure", dsl.Bool(), func(c *Context) *opt[bool] { return &c.Secure }),
	dsl.One("semaphoreSuffix", dsl.String(), func(c *Context) *opt[string] { return &c.SemaphoreSuffix }),
	dsl.One("powerDomain", dsl.String(), func(c *Context) *opt[string] { return &c.PowerDomain }),
).MustBuild()

// MCUSchema is the table of the <Mcu> root element. The xmlns declarations of
// the root are ignored.
var MCUSchema = dsl.RecordOf[MCU]("Mcu").Fields(
	dsl.One("clockTree", dsl.String(), func(m *MCU) *opt[string] { return &m.ClockTree }),
	dsl.One("dbVersion", dsl.String(), func(m *MCU) *opt[string] { return &m.DBVersion }),
	dsl.One("family", dsl.String(), func(m *MCU) *opt[string] { return &m.Family }),
	dsl.One("hasPowerPad", dsl.Bool(), func(m *MCU) *opt[bool] { return &m.HasPowerPad }),
	dsl.One("ioType", dsl.String(), func(m *MCU) *opt[string] { return &m.IOType }),
	dsl.One("line", dsl.String(), func(m *MCU) *opt[string] { return &m.Line }),
	dsl.One("package", dsl.String(), func(m *MCU) *opt[string] { return &m.Package }),
	dsl.One("refName", dsl.String(), func(m *MCU) *opt[string] { return &m.RefName }),
	dsl.One("name", dsl.String(), func(m *MCU) *opt[string] { return &m.Name }),
	dsl.One("fwLibrary", dsl.String(), func(m *MCU) *opt[string] { return &m.FWLibrary }),

	dsl.Many("ip", dsl.Nested(IPSchema), func(m *MCU) *[]IP { return &m.IPs }),
	dsl.Many("pin", dsl.Nested(PinSchema), func(m *MCU) *[]Pin { return &m.Pins }),
	dsl.Many("core", dsl.Text(dsl.String()), func(m *MCU) *[]string { return &m.Cores }),
	dsl.One("frequency", dsl.Text(dsl.Int()), func(m *MCU) *opt[int] { return &m.Frequency }),
	dsl.Many("ram", dsl.Text(dsl.Int()), func(m *MCU) *[]int { return &m.RAM }),
	dsl.Many("ccmRam", dsl.Text(dsl.Int()), func(m *MCU) *[]int { return &m.CCMRAM }),
	dsl.Many("flash", dsl.Text(dsl.Int()), func(m *MCU) *[]int { return &m.Flash }),
	dsl.Many("e2prom", dsl.Text(dsl.Int()), func(m *MCU) *[]int { return &m.E2PROM }),
	dsl.One("ionb", dsl.Text(dsl.Int()), func(m *MCU) *opt[int] { return &m.IONb }),
	dsl.One("die", dsl.Text(dsl.String()), func(m *MCU) *opt[string] { return &m.Die }),
	dsl.One("voltage", dsl.Nested(VoltageSchema), func(m *MCU) *opt[Voltage] { return &m.Voltage }),
	dsl.One("current", dsl.Nested(CurrentSchema), func(m *MCU) *opt[Current] { return &m.Current }),
	dsl.One("temperature", dsl.Nested(TemperatureSchema), func(m *MCU) *opt[Temperature] { return &m.Temperature }),
	dsl.Many("genTypeFirmware", dsl.Nested(GenTypeFirmwareSchema), func(m *MCU) *[]GenTypeFirmware { return &m.GenTypeFirmwares }),
	dsl.Many("context", dsl.Nested(ContextSchema), func(m *MCU) *[]Context { return &m.Contexts }),
	dsl.Many("contextProject", dsl.Nested(ContextProjectSchema), func(m *MCU) *[]ContextProject { return &m.ContextProjects }),
	dsl.One("memoryMap", dsl.Text(dsl.Bool()), func(m *MCU) *opt[bool] { return &m.MemoryMap }),
	dsl.One("trustZone", dsl.Text(dsl.Bool()), func(m *MCU) *opt[bool] { return &m.TrustZone }),
	dsl.One("LPBAM", dsl.Text(dsl.Bool()), func(m *MCU) *opt[bool] { return &m.LPBAM }),
	dsl.One("bootPath", dsl.Text(dsl.Bool()), func(m *MCU) *opt[bool] { return &m.BootPath }),
).Ignore("xmlns").MustBuild()
