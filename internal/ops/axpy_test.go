package ops

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/born-ml/gblas/internal/numeric"
	"github.com/born-ml/gblas/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, dt tensor.DataType, layout tensor.Layout, e tensor.Extents, rank int, values ...float32) *tensor.Tensor {
	t.Helper()
	tn, err := tensor.NewDense(e, rank, dt, layout)
	require.NoError(t, err)
	for i, c := range tn.Coords() {
		if int(i) < len(values) {
			require.NoError(t, tn.SetFloat32At(c, values[i], numeric.NearestEven))
		}
	}
	return tn
}

func values(t *testing.T, tn *tensor.Tensor) []float32 {
	t.Helper()
	var out []float32
	for _, c := range tn.Coords() {
		v, err := tn.Float32At(c)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestAxpyFloat32Dense(t *testing.T) {
	e := tensor.Extents{2, 2}
	x := dense(t, tensor.Float32, tensor.RowMajor, e, 2, 1, 2, 3, 4)
	y := dense(t, tensor.Float32, tensor.RowMajor, e, 2, 10, 20, 30, 40)
	out := dense(t, tensor.Float32, tensor.RowMajor, e, 2)

	require.NoError(t, Axpy(2, x, y, out, numeric.NearestEven))
	assert.Equal(t, []float32{12, 24, 36, 48}, values(t, out))
	assert.Equal(t, []float32{10, 20, 30, 40}, values(t, y))
}

func TestAxpyFloat32Large(t *testing.T) {
	const n = 20000
	e := tensor.Extents{n}
	x := dense(t, tensor.Float32, tensor.RowMajor, e, 1)
	y := dense(t, tensor.Float32, tensor.RowMajor, e, 1)
	out := dense(t, tensor.Float32, tensor.RowMajor, e, 1)
	xs, ys := x.AsFloat32(), y.AsFloat32()
	for i := range xs {
		xs[i] = float32(i)
		ys[i] = 1
	}

	require.NoError(t, Axpy(0.5, x, y, out, numeric.NearestEven))
	for i, v := range out.AsFloat32() {
		require.Equal(t, 0.5*float32(i)+1, v, "element %d", i)
	}
}

func TestAxpyInPlace(t *testing.T) {
	e := tensor.Extents{2}

	x := dense(t, tensor.Float32, tensor.RowMajor, e, 1, 1, 2)
	y := dense(t, tensor.Float32, tensor.RowMajor, e, 1, 3, 4)
	require.NoError(t, Axpy(2, x, y, y, numeric.NearestEven))
	assert.Equal(t, []float32{5, 8}, values(t, y))

	x = dense(t, tensor.Float32, tensor.RowMajor, e, 1, 1, 2)
	y = dense(t, tensor.Float32, tensor.RowMajor, e, 1, 3, 4)
	require.NoError(t, Axpy(2, x, y, x, numeric.NearestEven))
	assert.Equal(t, []float32{5, 8}, values(t, x))
}

// window binds a rank-1 tensor of n elements to mem starting at element off.
func window(t *testing.T, dt tensor.DataType, mem []byte, off, n int) *tensor.Tensor {
	t.Helper()
	tn, err := tensor.New(tensor.Extents{uint64(n)}, tensor.Strides{1}, 1, dt)
	require.NoError(t, err)
	size := dt.Size()
	require.NoError(t, tn.InitData(mem[off*size:(off+n)*size]))
	return tn
}

func TestAxpyShiftedWindows(t *testing.T) {
	tests := []struct {
		name     string
		dt       tensor.DataType
		xOff     int
		outOff   int
		outIsArg string
	}{
		{"fp32 out after x", tensor.Float32, 0, 1, "x"},
		{"fp32 out before x", tensor.Float32, 1, 0, "x"},
		{"bf16 out after x", tensor.BFloat16, 0, 1, "x"},
		{"fp32 out after y", tensor.Float32, 0, 1, "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := tt.dt.Size()
			mem := make([]byte, 9*size)
			for i := 0; i < 8; i++ {
				tt.dt.StoreFloat64(mem[(tt.xOff+i)*size:], float64(i+1), numeric.NearestEven)
			}

			shared := window(t, tt.dt, mem, tt.xOff, 8)
			out := window(t, tt.dt, mem, tt.outOff, 8)
			zeros := dense(t, tt.dt, tensor.RowMajor, tensor.Extents{8}, 1)

			var err error
			if tt.outIsArg == "x" {
				err = Axpy(1, shared, zeros, out, numeric.NearestEven)
			} else {
				err = Axpy(0, zeros, shared, out, numeric.NearestEven)
			}
			require.NoError(t, err)
			assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, values(t, out))
		})
	}
}

func TestAxpySharedBaseDifferentStrides(t *testing.T) {
	// out reads the same memory as x backwards.
	mem := make([]byte, 4*4)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(mem[4*i:], math.Float32bits(float32(i+1)))
	}
	x := window(t, tensor.Float32, mem, 0, 4)
	out, err := tensor.New(tensor.Extents{4}, tensor.Strides{-1}, 1, tensor.Float32)
	require.NoError(t, err)
	require.NoError(t, out.InitData(mem))
	y := dense(t, tensor.Float32, tensor.RowMajor, tensor.Extents{4}, 1)

	require.NoError(t, Axpy(2, x, y, out, numeric.NearestEven))
	assert.Equal(t, []float32{2, 4, 6, 8}, values(t, out))
}

func TestAxpyMixedLayouts(t *testing.T) {
	e := tensor.Extents{2, 3}
	x := dense(t, tensor.BFloat16, tensor.ColMajor, e, 2)
	y := dense(t, tensor.BFloat16, tensor.RowMajor, e, 2)
	out := dense(t, tensor.BFloat16, tensor.RowMajor, e, 2)

	for r := uint64(0); r < 2; r++ {
		for c := uint64(0); c < 3; c++ {
			require.NoError(t, x.SetFloat32At([]uint64{r, c}, float32(r*3+c), numeric.NearestEven))
			require.NoError(t, y.SetFloat32At([]uint64{r, c}, 0.5, numeric.NearestEven))
		}
	}

	require.NoError(t, Axpy(-1, x, y, out, numeric.NearestEven))
	assert.Equal(t, []float32{0.5, -0.5, -1.5, -2.5, -3.5, -4.5}, values(t, out))
}

func TestAxpyRoundingMode(t *testing.T) {
	e := tensor.Extents{1}
	x := dense(t, tensor.BFloat16, tensor.RowMajor, e, 1, 1)
	y := dense(t, tensor.BFloat16, tensor.RowMajor, e, 1, 1)
	out := dense(t, tensor.BFloat16, tensor.RowMajor, e, 1)

	tests := []struct {
		mode numeric.RoundingMode
		want float32
	}{
		{numeric.NearestEven, 1},
		{numeric.RoundUp, 1.0078125},
		{numeric.RoundDown, 1},
		{numeric.AwayFromZero, 1.0078125},
		{numeric.TowardZero, 1},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			require.NoError(t, Axpy(1.0/512, x, y, out, tt.mode))
			assert.Equal(t, []float32{tt.want}, values(t, out))
		})
	}
}

func TestAxpyFloat64(t *testing.T) {
	e := tensor.Extents{1}
	x, err := tensor.NewDense(e, 1, tensor.Float64, tensor.RowMajor)
	require.NoError(t, err)
	y := x.Clone()
	out := x.Clone()
	require.NoError(t, x.SetFloat64At([]uint64{0}, math.Ldexp(1, -40), numeric.NearestEven))
	require.NoError(t, y.SetFloat64At([]uint64{0}, 1, numeric.NearestEven))

	require.NoError(t, Axpy(1, x, y, out, numeric.NearestEven))
	v, err := out.Float64At([]uint64{0})
	require.NoError(t, err)
	assert.Equal(t, 1+math.Ldexp(1, -40), v)
}

func TestAxpyOperandErrors(t *testing.T) {
	a := dense(t, tensor.Float32, tensor.RowMajor, tensor.Extents{2}, 1)
	b := dense(t, tensor.Float32, tensor.RowMajor, tensor.Extents{3}, 1)
	h := dense(t, tensor.Float16, tensor.RowMajor, tensor.Extents{2}, 1)
	i := dense(t, tensor.Int32, tensor.RowMajor, tensor.Extents{2}, 1)
	unbound, err := tensor.New(tensor.Extents{2}, tensor.Strides{1}, 1, tensor.Float32)
	require.NoError(t, err)

	assert.ErrorIs(t, Axpy(1, a, b, a, numeric.NearestEven), tensor.ErrInvalidArgument)
	assert.ErrorIs(t, Axpy(1, a, h, a, numeric.NearestEven), tensor.ErrInvalidArgument)
	assert.ErrorIs(t, Axpy(1, i, i, i, numeric.NearestEven), tensor.ErrInvalidArgument)
	assert.ErrorIs(t, Axpy(1, a, a, nil, numeric.NearestEven), tensor.ErrInvalidArgument)
	assert.ErrorIs(t, Axpy(1, a, unbound, a, numeric.NearestEven), tensor.ErrContractViolation)
}

func TestAxpyEmpty(t *testing.T) {
	e, err := tensor.New(tensor.Extents{0, 3}, tensor.Strides{3, 1}, 2, tensor.BFloat16)
	require.NoError(t, err)
	assert.NoError(t, Axpy(1, e, e, e, numeric.NearestEven))
}

func BenchmarkAxpyFloat32(b *testing.B) {
	e := tensor.Extents{1 << 16}
	x, _ := tensor.NewDense(e, 1, tensor.Float32, tensor.RowMajor)
	y, _ := tensor.NewDense(e, 1, tensor.Float32, tensor.RowMajor)
	for b.Loop() {
		_ = Axpy(1.5, x, y, y, numeric.NearestEven)
	}
}

func BenchmarkAxpyBFloat16(b *testing.B) {
	e := tensor.Extents{1 << 16}
	x, _ := tensor.NewDense(e, 1, tensor.BFloat16, tensor.RowMajor)
	y, _ := tensor.NewDense(e, 1, tensor.BFloat16, tensor.RowMajor)
	for b.Loop() {
		_ = Axpy(1.5, x, y, y, numeric.NearestEven)
	}
}
