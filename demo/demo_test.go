package demo

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/colorfulnotion/xbit/xbiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReport = `Test REVERSE
Input:    0x000000B0
Reversed: 0x0D000000
Test ROTATE
Input: 0xC0002003
RIGHT: 0x3C000200
LEFT:  0x0002003C
`

const minimalReport = `Input:    0x000000B0
Reversed: 0x0D000000
`

func TestRunVariants(t *testing.T) {
	for _, engine := range []string{EngineSoftware, EngineEmulated} {
		var full, minimal bytes.Buffer
		require.NoError(t, Run(&full, Config{Variant: VariantFull, Engine: engine}))
		require.NoError(t, Run(&minimal, Config{Variant: VariantMinimal, Engine: engine}))
		assert.Equal(t, fullReport, full.String(), engine)
		assert.Equal(t, minimalReport, minimal.String(), engine)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	var buf bytes.Buffer
	err := Run(&buf, Config{Variant: "verbose", Engine: EngineSoftware})
	assert.True(t, errors.Is(err, xbiterrors.ErrEBadVariant))

	err = Run(&buf, Config{Variant: VariantFull, Engine: "fpga"})
	assert.True(t, errors.Is(err, xbiterrors.ErrEBadEngine))
	assert.Empty(t, buf.String())
}

func TestWriteRejectsUnknownVariant(t *testing.T) {
	res, err := Compute(SoftwareEngine{})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Write(&buf, "verbose", res)
	assert.True(t, errors.Is(err, xbiterrors.ErrEBadVariant))
	assert.Empty(t, buf.String())

	require.NoError(t, Write(&buf, VariantMinimal, res))
	assert.Equal(t, minimalReport, buf.String())
}

func TestEnginesAgree(t *testing.T) {
	soft, err := NewEngine(EngineSoftware)
	require.NoError(t, err)
	emu, err := NewEngine(EngineEmulated)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v, s := rng.Uint32(), rng.Uint32()

		a, err := soft.BitReverse32(v)
		require.NoError(t, err)
		b, err := emu.BitReverse32(v)
		require.NoError(t, err)
		require.Equal(t, a, b)

		a, _ = soft.RotateRight32(v, s)
		b, err = emu.RotateRight32(v, s)
		require.NoError(t, err)
		require.Equal(t, a, b, "rotr v=0x%08X s=%d", v, s)

		a, _ = soft.RotateLeft32(v, s)
		b, err = emu.RotateLeft32(v, s)
		require.NoError(t, err)
		require.Equal(t, a, b, "rotl v=0x%08X s=%d", v, s)
	}
}

func TestComputeNamesMatchOperations(t *testing.T) {
	res, err := Compute(SoftwareEngine{})
	require.NoError(t, err)
	// right rotation moves the low nibble to the top
	assert.Equal(t, uint32(0x3), res.RotatedRight>>28)
	// left rotation moves the high nibble to the bottom
	assert.Equal(t, uint32(0xC), res.RotatedLeft&0xF)
}

func TestEval(t *testing.T) {
	tests := []struct {
		line, want string
	}{
		{"rev 0b10110000", "0x0D000000"},
		{"bitrev 176", "0x0D000000"},
		{"rotr 0xC0002003 4", "0x3C000200"},
		{"right 0xC0002003 36", "0x3C000200"},
		{"ROTL 0xC0002003 4", "0x0002003C"},
		{"left 0xC0002003 0", "0xC0002003"},
		{"  rotl   0x1   32 ", "0x00000001"},
	}
	for _, tc := range tests {
		got, err := Eval(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", xbiterrors.ErrEBadArity},
		{"swap 1 2", xbiterrors.ErrEUnknownOp},
		{"rev", xbiterrors.ErrEBadArity},
		{"rev 1 2", xbiterrors.ErrEBadArity},
		{"rotr 1", xbiterrors.ErrEBadArity},
		{"rotr 0x100000000 1", xbiterrors.ErrEBadNumber},
		{"rotl 1 -1", xbiterrors.ErrEBadNumber},
	}
	for _, tc := range tests {
		_, err := Eval(tc.line)
		assert.True(t, errors.Is(err, tc.want), "%q: %v", tc.line, err)
	}
	_, err := Apply("swap", 1, 2)
	assert.True(t, errors.Is(err, xbiterrors.ErrEUnknownOp))
}
