package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	mcuschema "github.com/reoring/mcuschema"
	"github.com/reoring/mcuschema/mcu"
	"github.com/reoring/mcuschema/source/gojson"
	yamlsrc "github.com/reoring/mcuschema/source/yaml"
)

func (a *app) showCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Build one MCU record and print it",
		Long: `Builds the MCU record of one description file (XML, or a JSON/YAML mapping)
and prints it.

Example:
  mcuimport show 3dparty/st-open-pins/mcu/STM32F030C6Tx.xml --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readDocument(args[0], a.cfg.DocumentOpt(a.diagnostics(args[0])))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			m, err := mcu.ParseMCU(a.buildContext(cmd.Context(), args[0]), src)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return printValue(cmd.OutOrStdout(), m, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml or dump")
	return cmd
}

func (a *app) buildCmd() *cobra.Command {
	var typeName, format string
	cmd := &cobra.Command{
		Use:   "build --type NAME FILE",
		Short: "Build any catalog record from a JSON or YAML mapping",
		Long: fmt.Sprintf(`Builds a record of the named catalog type from a flat mapping document
(.json, .yaml or .yml) and prints it.

Types: %s

Example:
  mcuimport build --type pin pin.yaml`, strings.Join(mcu.Names(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := mcu.Lookup(typeName)
			if !ok {
				return fmt.Errorf("unknown type %q (known: %s)", typeName, strings.Join(mcu.Names(), ", "))
			}
			src, err := mcuschema.ReadMappingFile(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			v, err := e.Build(a.buildContext(cmd.Context(), args[0]), src)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return printValue(cmd.OutOrStdout(), v, format)
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "mcu", "Catalog type to build")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, yaml or dump")
	return cmd
}

// readDocument returns the root element of an XML file, or the mapping of a
// .json/.yaml/.yml file.
func readDocument(path string, opt mcuschema.DocumentOpt) (any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return mcuschema.ReadMappingFile(path)
	default:
		return mcuschema.ReadXMLFile(path, opt)
	}
}

func printValue(w io.Writer, v any, format string) error {
	var (
		b   []byte
		err error
	)
	switch strings.ToLower(format) {
	case "json", "":
		b, err = gojson.MarshalIndent(v)
		b = append(b, '\n')
	case "yaml", "yml":
		b, err = yamlsrc.Marshal(v)
	case "dump":
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, v)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
