package commands

import (
	"github.com/spf13/cobra"

	"github.com/reoring/skema/country"
	"github.com/reoring/skema/internal/cli/output"
)

func newSchemaCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the Country JSON Schema",
		Long:  "Export the Country array schema as a JSON Schema (draft 2020-12) document.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := country.Codec().JSONSchema()
			if err != nil {
				return err
			}
			return output.WriteDocument(cmd.OutOrStdout(), format, doc)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "document format: json or yaml")
	return cmd
}
