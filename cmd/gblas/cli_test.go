package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gblas/tensor"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gblas "+version+"\n", out)
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "--format", "bf16", "3.14159")
	require.NoError(t, err)
	assert.Contains(t, out, "0x4049")
	assert.Contains(t, out, "3.140625")

	out, err = run(t, "convert", "--format", "e4m3", "--rounding", "toward-zero", "--", "-1000")
	require.NoError(t, err)
	assert.Contains(t, out, "0xF8")
	assert.Contains(t, out, "-Inf")
}

func TestConvertBeyondFloat32Range(t *testing.T) {
	out, err := run(t, "convert", "--format", "bf16", "1e39")
	require.NoError(t, err)
	assert.Contains(t, out, "0x7F80")
	assert.Contains(t, out, "+Inf")

	out, err = run(t, "convert", "--format", "fp16", "--", "-1e39")
	require.NoError(t, err)
	assert.Contains(t, out, "0xFC00")
}

func TestConvertAllFormats(t *testing.T) {
	out, err := run(t, "convert", "1")
	require.NoError(t, err)
	for _, name := range []string{"bf16", "fp16", "tf32", "e5m2", "e4m3"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "0x3F800000")
}

func TestConvertRoundingFromEnv(t *testing.T) {
	t.Setenv(envRounding, "round-up")
	out, err := run(t, "convert", "--format", "bf16", "1.001")
	require.NoError(t, err)
	assert.Contains(t, out, "0x3F81")
}

func TestConvertErrors(t *testing.T) {
	_, err := run(t, "convert", "--format", "fp4", "1")
	assert.Error(t, err)

	_, err = run(t, "convert", "--rounding", "sideways", "1")
	assert.Error(t, err)

	_, err = run(t, "convert", "abc")
	assert.Error(t, err)

	_, err = run(t, "convert")
	assert.Error(t, err)
}

func TestFormatsCommand(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "65504")
	assert.Contains(t, out, "57344")
	assert.Contains(t, out, "0x7E00")
	assert.Equal(t, 6, strings.Count(strings.TrimSpace(out), "\n")+1)
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "inspect", "--extents", "100,100", "--strides", "1,100", "--dtype", "bf16")
	require.NoError(t, err)
	assert.Contains(t, out, "elements:  10000")
	assert.Contains(t, out, "footprint: 20000 bytes")

	out, err = run(t, "inspect", "--extents", "2,3", "--dtype", "fp32", "--list", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "[0 2]")
	assert.Contains(t, out, "[1 0]")
	assert.NotContains(t, out, "[1 1]")
}

func TestBuildTensor(t *testing.T) {
	tn, err := buildTensor("2,3,4", "", "fp16", "col-major")
	require.NoError(t, err)
	assert.Equal(t, tensor.Strides{1, 2, 6, 24, 24}, tn.Strides())
	assert.Equal(t, tensor.ColMajor, tn.Layout())

	_, err = buildTensor("1,1,1,1,1,1", "", "fp32", "row-major")
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	_, err = buildTensor("2,2", "1", "fp32", "row-major")
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	_, err = buildTensor("2,x", "", "fp32", "row-major")
	assert.Error(t, err)
}
