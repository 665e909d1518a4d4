// Package ops implements element-wise BLAS-style operations over strided tensors.
package ops

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/gblas/internal/numeric"
	"github.com/born-ml/gblas/internal/parallel"
	"github.com/born-ml/gblas/internal/tensor"
	"gonum.org/v1/gonum/blas/blas32"
)

// Axpy computes out = alpha*x + y element-wise.
//
// x, y and out must share rank, extents and a floating-point data type. Each
// element is computed in float32 (float64 for Float64 tensors) and stored
// through the codec with mode. out may share memory with x or y: an operand
// that addresses every element at the same byte as out is updated in place,
// any other overlapping operand is read from a private copy.
//
// Dense fp32 tensors with identical strides are handed to gonum's blas32.
func Axpy(alpha float32, x, y, out *tensor.Tensor, mode numeric.RoundingMode) error {
	if err := checkOperands(x, y, out); err != nil {
		return err
	}
	if out.NumElements() == 0 {
		return nil
	}
	for _, t := range []*tensor.Tensor{x, y, out} {
		if t.Buffer().Len() == 0 {
			return fmt.Errorf("%w: operand %s has no bound data", tensor.ErrContractViolation, t)
		}
	}
	if overlaps(out, x) && !sameView(out, x) {
		x = x.Clone()
	}
	if overlaps(out, y) && !sameView(out, y) {
		y = y.Clone()
	}

	if denseFloat32(x, y, out) && !sameBase(out, x) {
		axpyFloat32(alpha, x, y, out)
		return nil
	}
	return axpyStrided(alpha, x, y, out, mode)
}

func checkOperands(x, y, out *tensor.Tensor) error {
	if x == nil || y == nil || out == nil {
		return fmt.Errorf("%w: nil operand", tensor.ErrInvalidArgument)
	}
	for _, t := range []*tensor.Tensor{x, y} {
		if t.Rank() != out.Rank() || t.Extents() != out.Extents() {
			return fmt.Errorf("%w: shape mismatch: %s vs %s", tensor.ErrInvalidArgument, t, out)
		}
		if t.DType() != out.DType() {
			return fmt.Errorf("%w: dtype mismatch: %s vs %s", tensor.ErrInvalidArgument, t.DType(), out.DType())
		}
	}
	if !out.DType().IsFloat() {
		return fmt.Errorf("%w: axpy requires a floating-point dtype, got %s", tensor.ErrInvalidArgument, out.DType())
	}
	return nil
}

// denseFloat32 reports whether all operands are fp32, share strides, and
// cover their footprint with exactly one element per slot.
func denseFloat32(x, y, out *tensor.Tensor) bool {
	if out.DType() != tensor.Float32 {
		return false
	}
	if x.Strides() != out.Strides() || y.Strides() != out.Strides() {
		return false
	}
	return out.FootprintBytes() == out.NumElements()*uint64(out.ElementSize())
}

// span returns the address range [lo, hi) of t's bound buffer.
func span(t *tensor.Tensor) (lo, hi uintptr) {
	b := t.Buffer().Bytes()
	//nolint:gosec // address comparison only, the pointer is never rebuilt
	lo = uintptr(unsafe.Pointer(&b[0]))
	return lo, lo + uintptr(len(b))
}

func overlaps(a, b *tensor.Tensor) bool {
	alo, ahi := span(a)
	blo, bhi := span(b)
	return alo < bhi && blo < ahi
}

func sameBase(a, b *tensor.Tensor) bool {
	return &a.Buffer().Bytes()[0] == &b.Buffer().Bytes()[0]
}

// sameView reports whether a and b resolve every coordinate to the same byte.
func sameView(a, b *tensor.Tensor) bool {
	return sameBase(a, b) && a.Strides() == b.Strides()
}

func axpyFloat32(alpha float32, x, y, out *tensor.Tensor) {
	n := int(out.NumElements())
	xs, ys, dst := x.AsFloat32()[:n], y.AsFloat32()[:n], out.AsFloat32()[:n]
	if !sameBase(out, y) {
		copy(dst, ys)
	}

	parallel.Range(n, parallel.DefaultConfig(), func(start, end int) {
		blas32.Axpy(alpha,
			blas32.Vector{N: end - start, Inc: 1, Data: xs[start:end]},
			blas32.Vector{N: end - start, Inc: 1, Data: dst[start:end]},
		)
	})
}

func axpyStrided(alpha float32, x, y, out *tensor.Tensor, mode numeric.RoundingMode) error {
	n := out.NumElements()

	// Overlapping output strides map several indices to one slot.
	cfg := parallel.DefaultConfig()
	if out.FootprintBytes() < n*uint64(out.ElementSize()) {
		cfg = parallel.Sequential()
	}

	errs := make(chan error, 1)
	parallel.For(int(n), cfg, func(i int) {
		if err := axpyAt(alpha, x, y, out, uint64(i), mode); err != nil {
			select {
			case errs <- err:
			default:
			}
		}
	})

	select {
	case err := <-errs:
		return err
	default:
		return nil
	}
}

func axpyAt(alpha float32, x, y, out *tensor.Tensor, index uint64, mode numeric.RoundingMode) error {
	coords, err := out.Coordinates(index)
	if err != nil {
		return err
	}
	xv, err := x.Float64At(coords)
	if err != nil {
		return err
	}
	yv, err := y.Float64At(coords)
	if err != nil {
		return err
	}

	var r float64
	if out.DType() == tensor.Float64 {
		r = float64(alpha)*xv + yv
	} else {
		r = float64(alpha*float32(xv) + float32(yv))
	}
	return out.SetFloat64At(coords, r, mode)
}
