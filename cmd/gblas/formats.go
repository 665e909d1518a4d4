package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/gblas/numeric"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported narrow formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var data [][]string
			for _, f := range numeric.Formats() {
				data = append(data, []string{
					f.Name(),
					strconv.Itoa(int(f.Width())),
					strconv.Itoa(int(f.ExponentBits())),
					strconv.Itoa(int(f.MantissaBits())),
					strconv.Itoa(f.Bias()),
					formatFloat(f.Max()),
					formatFloat(f.Min()),
					formatFloat(f.SmallestSubnormal()),
					hexBits(f, f.InfBits(false)),
					hexBits(f, f.NaNBits(false)),
				})
			}

			table := newTable(cmd.OutOrStdout(), []string{"NAME", "WIDTH", "EXP", "MANTISSA", "BIAS", "MAX", "MIN NORMAL", "MIN SUBNORMAL", "INF", "NAN"})
			table.AppendBulk(data)
			table.Render()
			return nil
		},
	}
}
