package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/gblas/tensor"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the addressing of a strided tensor",
		Example: `  gblas inspect --extents 100,100 --strides 1,100 --dtype bf16
  gblas inspect --extents 2,3,4 --layout col-major --list 8`,
		Args: cobra.NoArgs,
		RunE: inspectHandler,
	}
	cmd.Flags().String("extents", "", "Comma separated extents, one per axis (required)")
	cmd.Flags().String("strides", "", "Comma separated element strides (default: dense for --layout)")
	cmd.Flags().String("dtype", "fp32", "Element data type")
	cmd.Flags().String("layout", "row-major", "Layout used for dense strides (row-major or col-major)")
	cmd.Flags().Int("list", 0, "List the first N linear indices with coordinates and byte offsets")
	_ = cmd.MarkFlagRequired("extents")
	return cmd
}

func inspectHandler(cmd *cobra.Command, _ []string) error {
	extentsFlag, _ := cmd.Flags().GetString("extents")
	stridesFlag, _ := cmd.Flags().GetString("strides")
	dtypeFlag, _ := cmd.Flags().GetString("dtype")
	layoutFlag, _ := cmd.Flags().GetString("layout")
	list, _ := cmd.Flags().GetInt("list")

	t, err := buildTensor(extentsFlag, stridesFlag, dtypeFlag, layoutFlag)
	if err != nil {
		return err
	}
	slog.Debug("tensor", "desc", t.String())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", t)
	fmt.Fprintf(out, "elements:  %d\n", t.NumElements())
	fmt.Fprintf(out, "footprint: %d bytes\n", t.FootprintBytes())

	if list <= 0 {
		return nil
	}

	var data [][]string
	for i, coords := range t.Coords() {
		if i >= uint64(list) {
			break
		}
		off, err := t.OffsetOf(coords)
		if err != nil {
			return err
		}
		data = append(data, []string{strconv.FormatUint(i, 10), fmt.Sprint(coords), strconv.FormatUint(off, 10)})
	}

	table := newTable(out, []string{"INDEX", "COORDS", "BYTE OFFSET"})
	table.AppendBulk(data)
	table.Render()
	return nil
}

func buildTensor(extentsFlag, stridesFlag, dtypeFlag, layoutFlag string) (*tensor.Tensor, error) {
	dims, err := parseUints(extentsFlag)
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 || len(dims) > tensor.MaxDims {
		return nil, fmt.Errorf("%w: need 1 to %d extents, got %d", tensor.ErrInvalidArgument, tensor.MaxDims, len(dims))
	}
	dtype, err := tensor.ParseDataType(dtypeFlag)
	if err != nil {
		return nil, err
	}
	layout, err := tensor.ParseLayout(layoutFlag)
	if err != nil {
		return nil, err
	}

	var extents tensor.Extents
	copy(extents[:], dims)
	rank := len(dims)

	strides := tensor.DenseStrides(extents, rank, layout)
	if stridesFlag != "" {
		steps, err := parseInts(stridesFlag)
		if err != nil {
			return nil, err
		}
		if len(steps) != rank {
			return nil, fmt.Errorf("%w: %d strides for %d extents", tensor.ErrInvalidArgument, len(steps), rank)
		}
		copy(strides[:], steps)
	}
	return tensor.NewWithLayout(extents, strides, rank, dtype, layout)
}
