package mcu

import (
	"fmt"
	"strings"

	mcuschema "github.com/reoring/mcuschema"
)

// SignalMode is one I/O mode a pin signal supports.
type SignalMode string

const (
	ModeInput    SignalMode = "INPUT"
	ModeLPInput  SignalMode = "LPINPUT"
	ModeOutput   SignalMode = "OUTPUT"
	ModeLPOutput SignalMode = "LPOUTPUT"
	ModeAnalog   SignalMode = "ANALOG"
	ModeEventOut SignalMode = "EVENTOUT"
	ModeEXTI     SignalMode = "EXTI"
	ModeEXTI1    SignalMode = "EXTI1"
	ModeEXTI2    SignalMode = "EXTI2"
)

// SignalModes lists every SignalMode.
var SignalModes = []SignalMode{
	ModeInput, ModeLPInput, ModeOutput, ModeLPOutput, ModeAnalog,
	ModeEventOut, ModeEXTI, ModeEXTI1, ModeEXTI2,
}

// PinType classifies a package pin. Source tokens such as "I/O" or "MonoIO"
// are normalized before lookup.
type PinType string

const (
	PinPower  PinType = "POWER"
	PinMonoIO PinType = "MONOIO"
	PinIO     PinType = "IO"
	PinBoot   PinType = "BOOT"
	PinReset  PinType = "RESET"
	PinNC     PinType = "NC"
)

// PinTypes lists every PinType.
var PinTypes = []PinType{PinPower, PinMonoIO, PinIO, PinBoot, PinReset, PinNC}

// Signal is an alternate function routed to a pin.
type Signal struct {
	Name    mcuschema.Optional[string]       `json:"name" yaml:"name,omitempty"`
	IOModes mcuschema.Optional[[]SignalMode] `json:"ioModes" yaml:"ioModes,omitempty"`
}

// Condition restricts when a pin is usable.
type Condition struct {
	Diagnostic mcuschema.Optional[string] `json:"diagnostic" yaml:"diagnostic,omitempty"`
	Expression mcuschema.Optional[string] `json:"expression" yaml:"expression,omitempty"`
}

// Pin is one physical pin of a package.
type Pin struct {
	Name              mcuschema.Optional[string]  `json:"name" yaml:"name,omitempty"`
	Position          mcuschema.Optional[string]  `json:"position" yaml:"position,omitempty"`
	Variant           mcuschema.Optional[string]  `json:"variant" yaml:"variant,omitempty"`
	RequestToSecureIP mcuschema.Optional[bool]    `json:"requestToSecureIP" yaml:"requestToSecureIP,omitempty"`
	Type              mcuschema.Optional[PinType] `json:"type" yaml:"type,omitempty"`
	Signals           []Signal                    `json:"signal,omitempty" yaml:"signal,omitempty"`
	Conditions        []Condition                 `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// ContextIP describes how an IP instance participates in one execution
// context.
type ContextIP struct {
	ContextName          mcuschema.Optional[string]   `json:"contextName" yaml:"contextName,omitempty"`
	ForcedSelection      mcuschema.Optional[bool]     `json:"forcedSelection" yaml:"forcedSelection,omitempty"`
	DevalidatedOnSelect  mcuschema.Optional[string]   `json:"devalidatedOnSelect" yaml:"devalidatedOnSelect,omitempty"`
	InitializerForced    mcuschema.Optional[bool]     `json:"initializerForced" yaml:"initializerForced,omitempty"`
	DefaultSelection     mcuschema.Optional[bool]     `json:"defaultSelection" yaml:"defaultSelection,omitempty"`
	SynchronizedContexts mcuschema.Optional[[]string] `json:"synchronizedContexts" yaml:"synchronizedContexts,omitempty"`
}

// ContextSplit groups the ContextIP entries of an IP.
type ContextSplit struct {
	Name       mcuschema.Optional[string] `json:"name" yaml:"name,omitempty"`
	ContextIPs []ContextIP                `json:"contextIp,omitempty" yaml:"contextIp,omitempty"`
}

// ContextProject is a named set of contexts.
type ContextProject struct {
	Attributes mcuschema.Optional[[]string] `json:"attributes" yaml:"attributes,omitempty"`
	Comment    mcuschema.Optional[string]   `json:"comment" yaml:"comment,omitempty"`
	Contexts   mcuschema.Optional[[]string] `json:"contexts" yaml:"contexts,omitempty"`
	Name       mcuschema.Optional[string]   `json:"name" yaml:"name,omitempty"`
}

// IP is a peripheral instance of the microcontroller.
type IP struct {
	Name              mcuschema.Optional[string] `json:"name" yaml:"name,omitempty"`
	Version           mcuschema.Optional[string] `json:"version" yaml:"version,omitempty"`
	ConfigFile        mcuschema.Optional[string] `json:"configFile" yaml:"configFile,omitempty"`
	InstanceName      mcuschema.Optional[string] `json:"instanceName" yaml:"instanceName,omitempty"`
	ClockEnableMode   mcuschema.Optional[string] `json:"clockEnableMode" yaml:"clockEnableMode,omitempty"`
	IPContextCoupling mcuschema.Optional[string] `json:"ipContextCoupling" yaml:"ipContextCoupling,omitempty"`
	PowerDomain       mcuschema.Optional[string] `json:"powerDomain" yaml:"powerDomain,omitempty"`
	ContextSplits     []ContextSplit             `json:"contextSplit,omitempty" yaml:"contextSplit,omitempty"`
}

// Voltage is the supply range in volts.
type Voltage struct {
	Min mcuschema.Optional[float64] `json:"min" yaml:"min,omitempty"`
	Max mcuschema.Optional[float64] `json:"max" yaml:"max,omitempty"`
}

// Current is the consumption figure in microamperes.
type Current struct {
	Lowest mcuschema.Optional[float64] `json:"lowest" yaml:"lowest,omitempty"`
	Run    mcuschema.Optional[float64] `json:"run" yaml:"run,omitempty"`
}

// Temperature is the operating range in degrees Celsius.
type Temperature struct {
	Min mcuschema.Optional[float64] `json:"min" yaml:"min,omitempty"`
	Max mcuschema.Optional[float64] `json:"max" yaml:"max,omitempty"`
}

// GenTypeFirmware names a firmware package and its generation type.
type GenTypeFirmware struct {
	FirmwareName mcuschema.Optional[string] `json:"firmwareName" yaml:"firmwareName,omitempty"`
	GenType      mcuschema.Optional[string] `json:"genType" yaml:"genType,omitempty"`
}

// Context is an execution context (core, security state) of the device.
type Context struct {
	Comment         mcuschema.Optional[string] `json:"comment" yaml:"comment,omitempty"`
	GenType         mcuschema.Optional[string] `json:"genType" yaml:"genType,omitempty"`
	Core            mcuschema.Optional[string] `json:"core" yaml:"core,omitempty"`
	GroupName       mcuschema.Optional[string] `json:"groupName" yaml:"groupName,omitempty"`
	GroupShortName  mcuschema.Optional[string] `json:"groupShortName" yaml:"groupShortName,omitempty"`
	Name            mcuschema.Optional[string] `json:"name" yaml:"name,omitempty"`
	ShortName       mcuschema.Optional[string] `json:"shortName" yaml:"shortName,omitempty"`
	LongName        mcuschema.Optional[string] `json:"longName" yaml:"longName,omitempty"`
	Secure          mcuschema.Optional[bool]   `json:"secure" yaml:"secure,omitempty"`
	SemaphoreSuffix mcuschema.Optional[string] `json:"semaphoreSuffix" yaml:"semaphoreSuffix,omitempty"`
	PowerDomain     mcuschema.Optional[string] `json:"powerDomain" yaml:"powerDomain,omitempty"`
}

// MCU is the top-level record of one microcontroller description file.
type MCU struct {
	ClockTree   mcuschema.Optional[string] `json:"clockTree" yaml:"clockTree,omitempty"`
	DBVersion   mcuschema.Optional[string] `json:"dbVersion" yaml:"dbVersion,omitempty"`
	Family      mcuschema.Optional[string] `json:"family" yaml:"family,omitempty"`
	HasPowerPad mcuschema.Optional[bool]   `json:"hasPowerPad" yaml:"hasPowerPad,omitempty"`
	IOType      mcuschema.Optional[string] `json:"ioType" yaml:"ioType,omitempty"`
	Line        mcuschema.Optional[string] `json:"line" yaml:"line,omitempty"`
	Package     mcuschema.Optional[string] `json:"package" yaml:"package,omitempty"`
	RefName     mcuschema.Optional[string] `json:"refName" yaml:"refName,omitempty"`
	Name        mcuschema.Optional[string] `json:"name" yaml:"name,omitempty"`
	FWLibrary   mcuschema.Optional[string] `json:"fwLibrary" yaml:"fwLibrary,omitempty"`

	IPs       []IP                       `json:"ip,omitempty" yaml:"ip,omitempty"`
	Pins      []Pin                      `json:"pin,omitempty" yaml:"pin,omitempty"`
	Cores     []string                   `json:"core,omitempty" yaml:"core,omitempty"`
	Frequency mcuschema.Optional[int]    `json:"frequency" yaml:"frequency,omitempty"`
	RAM       []int                      `json:"ram,omitempty" yaml:"ram,omitempty"`
	CCMRAM    []int                      `json:"ccmRam,omitempty" yaml:"ccmRam,omitempty"`
	Flash     []int                      `json:"flash,omitempty" yaml:"flash,omitempty"`
	E2PROM    []int                      `json:"e2prom,omitempty" yaml:"e2prom,omitempty"`
	IONb      mcuschema.Optional[int]    `json:"ionb" yaml:"ionb,omitempty"`
	Die       mcuschema.Optional[string] `json:"die" yaml:"die,omitempty"`

	Voltage     mcuschema.Optional[Voltage]     `json:"voltage" yaml:"voltage,omitempty"`
	Current     mcuschema.Optional[Current]     `json:"current" yaml:"current,omitempty"`
	Temperature mcuschema.Optional[Temperature] `json:"temperature" yaml:"temperature,omitempty"`

	GenTypeFirmwares []GenTypeFirmware `json:"genTypeFirmware,omitempty" yaml:"genTypeFirmware,omitempty"`
	Contexts         []Context         `json:"context,omitempty" yaml:"context,omitempty"`
	ContextProjects  []ContextProject  `json:"contextProject,omitempty" yaml:"contextProject,omitempty"`

	MemoryMap mcuschema.Optional[bool] `json:"memoryMap" yaml:"memoryMap,omitempty"`
	TrustZone mcuschema.Optional[bool] `json:"trustZone" yaml:"trustZone,omitempty"`
	LPBAM     mcuschema.Optional[bool] `json:"LPBAM" yaml:"LPBAM,omitempty"`
	BootPath  mcuschema.Optional[bool] `json:"bootPath" yaml:"bootPath,omitempty"`
}

// Summary renders the one-line description logged per imported file:
// reference name, family, package and memory sizes in KiB.
func (m MCU) Summary() string {
	return fmt.Sprintf("%s %s %s ram=%s flash=%s",
		m.RefName.Or("?"), m.Family.Or("?"), m.Package.Or("?"), joinInts(m.RAM), joinInts(m.Flash))
}

func joinInts(v []int) string {
	if len(v) == 0 {
		return "-"
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}
