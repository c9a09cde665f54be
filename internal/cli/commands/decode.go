package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/country"
	"github.com/reoring/skema/internal/cli/input"
	"github.com/reoring/skema/internal/cli/output"
	"github.com/reoring/skema/internal/cli/ui"
)

// ErrValidation is returned after a violation has been reported on stderr.
var ErrValidation = errors.New("validation failed")

func newDecodeCommand(a *app) *cobra.Command {
	var outputFormat, inputFormat string

	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Validate a Country array and print the decoded records",
		Long: `Decode reads a JSON (or JSONC/YAML) array of restcountries Country
objects, validates every element and prints the result.

The whole batch fails on the first violation; nothing is printed on stdout
in that case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFmt, err := output.ParseFormat(outputFormat)
			if err != nil {
				return err
			}
			records, err := a.decode(cmd, args, inputFormat)
			if err != nil {
				return err
			}
			if outFmt != output.FormatSummary {
				return output.WriteRecords(cmd.OutOrStdout(), outFmt, records)
			}
			countries, err := country.FromRecords(records)
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), countries, a.cfg.NoColor)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "summary", "output format: summary, json, yaml or cbor")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json, jsonc or yaml (default: by extension)")
	return cmd
}

// decode opens the input named by args and runs it through the Country
// codec configured from a.cfg. Violations are rendered on stderr.
func (a *app) decode(cmd *cobra.Command, args []string, inputFormat string) ([]skema.Record, error) {
	inFmt, err := input.ParseFormat(inputFormat)
	if err != nil {
		return nil, err
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	src, err := input.Open(path, cmd.InOrStdin(), inFmt, a.cfg.MaxBytes)
	if err != nil {
		return nil, err
	}

	opts := a.cfg.Options()
	stderr := cmd.ErrOrStderr()
	opts.OnWarning = func(v *skema.Violation) {
		a.log.Warn("duplicate key", zap.String("path", v.Path), zap.String("key", v.Key))
		fmt.Fprint(stderr, ui.FormatWarning(v, a.cfg.NoColor))
	}
	codec := country.NewCodec(opts)

	a.log.Debug("decoding", zap.String("input", path), zap.String("driver", skema.JSONDriverName()))
	records, err := codec.DecodeFrom(src)
	if err != nil {
		return nil, a.report(stderr, err)
	}
	a.log.Info("decoded", zap.Int("records", len(records)))
	return records, nil
}

// report renders a violation and replaces it with ErrValidation; other
// errors pass through unchanged.
func (a *app) report(w io.Writer, err error) error {
	v, ok := skema.AsViolation(err)
	if !ok {
		return err
	}
	a.log.Debug("violation", zap.String("code", v.Code), zap.String("path", v.Path))
	fmt.Fprint(w, ui.FormatViolation(v, a.cfg.NoColor))
	return ErrValidation
}

func writeSummary(w io.Writer, countries []country.Country, noColor bool) {
	ui.WriteSuccess(w, fmt.Sprintf("%d countries valid", len(countries)), noColor)
	if len(countries) == 0 {
		return
	}
	perRegion := map[string]int{}
	for _, c := range countries {
		perRegion[c.Region]++
	}
	regions := make([]string, 0, len(perRegion))
	for r := range perRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	fmt.Fprintln(w)
	t := ui.NewTable(w, noColor, "REGION", "COUNTRIES")
	for _, r := range regions {
		t.AddRow(r, strconv.Itoa(perRegion[r]))
	}
	t.Render()
}
