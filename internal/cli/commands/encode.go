package commands

import (
	"github.com/spf13/cobra"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/country"
	"github.com/reoring/skema/internal/cli/input"
)

func newEncodeCommand(a *app) *cobra.Command {
	var inputFormat string
	var compact bool

	cmd := &cobra.Command{
		Use:   "encode [file|-]",
		Short: "Validate records and write them in wire form",
		Long: `Encode reads an array of Country records, validates it in the encode
direction and writes canonical JSON: declared fields first, in schema order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inFmt, err := input.ParseFormat(inputFormat)
			if err != nil {
				return err
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := input.Open(path, cmd.InOrStdin(), inFmt, a.cfg.MaxBytes)
			if err != nil {
				return err
			}
			opts := a.cfg.Options()
			opts.Compact = compact
			codec := country.NewCodec(opts)

			v, err := skema.ParseValue(src, opts.ParseOpt)
			if err != nil {
				return a.report(cmd.ErrOrStderr(), err)
			}
			b, err := codec.EncodeValue(v)
			if err != nil {
				return a.report(cmd.ErrOrStderr(), err)
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(b); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json, jsonc or yaml (default: by extension)")
	cmd.Flags().BoolVar(&compact, "compact", false, "write compact JSON without indentation")
	return cmd
}
