package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/gblas/numeric"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert VALUE [VALUE...]",
		Short: "Encode float32 values into narrow formats",
		Example: `  gblas convert 3.14159
  gblas convert --format e4m3 --rounding toward-zero -- 1.1 -300 nan`,
		Args: cobra.MinimumNArgs(1),
		RunE: convertHandler,
	}
	cmd.Flags().StringP("format", "f", "all", "Target format (bf16, fp16, tf32, e5m2, e4m3 or all)")
	cmd.Flags().StringP("rounding", "r", defaultRounding(), "Rounding mode (env "+envRounding+")")
	return cmd
}

func convertHandler(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	roundingName, _ := cmd.Flags().GetString("rounding")

	mode, err := numeric.ParseRoundingMode(roundingName)
	if err != nil {
		return err
	}

	formats := numeric.Formats()
	if formatName != "all" {
		f, err := numeric.ParseFormat(formatName)
		if err != nil {
			return err
		}
		formats = []*numeric.Format{f}
	}

	var data [][]string
	for _, arg := range args {
		// Out-of-range input parses to a signed infinity, which encodes as
		// the format's infinity.
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		for _, f := range formats {
			bits := f.Encode(float32(v), mode)
			slog.Debug("encoded", "value", arg, "format", f.Name(), "mode", mode, "bits", bits)
			data = append(data, []string{arg, f.Name(), hexBits(f, bits), formatFloat(f.Decode(bits))})
		}
	}

	table := newTable(cmd.OutOrStdout(), []string{"INPUT", "FORMAT", "BITS", "DECODED"})
	table.AppendBulk(data)
	table.Render()
	return nil
}
