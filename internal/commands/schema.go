package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/mcuschema/mcu"
)

func (a *app) schemaCmd() *cobra.Command {
	var typeName, format string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a catalog type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, ok := mcu.Lookup(typeName)
			if !ok {
				return fmt.Errorf("unknown type %q (known: %s)", typeName, strings.Join(mcu.Names(), ", "))
			}
			return printValue(cmd.OutOrStdout(), e.Schema(), format)
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "mcu", "Catalog type")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}
