package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/skema/country"
	"github.com/reoring/skema/internal/cli/output"
	"github.com/reoring/skema/internal/cli/ui"
)

func newListCommand(a *app) *cobra.Command {
	var region, code, inputFormat, format string

	cmd := &cobra.Command{
		Use:   "list [file|-]",
		Short: "List the countries of a region, or the neighbours of one country",
		Long: `List decodes the input, then prints every country of --region sorted by
name. With --country it prints the bordering countries of that cca3 code
instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !country.IsRegion(region) {
				return fmt.Errorf("unknown region %q (want one of %s)", region, strings.Join(country.RegionCases, ", "))
			}
			records, err := a.decode(cmd, args, inputFormat)
			if err != nil {
				return err
			}
			countries, err := country.FromRecords(records)
			if err != nil {
				return err
			}

			rows := country.FilterByRegion(countries, region)
			if code != "" {
				if !containsCode(rows, code) {
					return fmt.Errorf("no country %q in region %s", code, region)
				}
				rows, _ = country.BordersOf(countries, code)
			}

			if format != "table" {
				return output.WriteDocument(cmd.OutOrStdout(), format, rows)
			}
			t := ui.NewTable(cmd.OutOrStdout(), a.cfg.NoColor, "NAME", "CCA3", "BORDERS")
			for _, s := range rows {
				t.AddRow(s.Name, s.CCA3, strings.Join(s.Borders, ","))
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "Europe", "region to list")
	cmd.Flags().StringVarP(&code, "country", "c", "", "cca3 code whose neighbours to list")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json, jsonc or yaml (default: by extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json or yaml")
	return cmd
}

func containsCode(rows []country.SmallCountry, cca3 string) bool {
	for _, s := range rows {
		if s.CCA3 == cca3 {
			return true
		}
	}
	return false
}
