package mcuschema

// Version is the release of the module and the mcuimport command.
const Version = "0.3.0"
