package xcore

import (
	"bytes"
	"errors"
	"testing"

	"github.com/colorfulnotion/xbit/bitops"
	"github.com/colorfulnotion/xbit/log"
	"github.com/colorfulnotion/xbit/xbiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	regA0 = 10
	regA1 = 11
)

func rtype(funct7, rs2, rs1, funct3, rd, opcode uint32) uint32 {
	return funct7<<25 | rs2<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
}

func TestDecodeDemoWords(t *testing.T) {
	tests := []struct {
		word uint32
		want Instruction
		text string
	}{
		{0x0405752B, Instruction{Word: 0x0405752B, Opcode: 0x2B, Rd: regA0, Funct3: 7, Rs1: regA0, Rs2: 0, Funct7: XBITREV}, "XBITREV a0, a0"},
		{0x06B5752B, Instruction{Word: 0x06B5752B, Opcode: 0x2B, Rd: regA0, Funct3: 7, Rs1: regA0, Rs2: regA1, Funct7: XROTRIGHT}, "XROTRIGHT a0, a0, a1"},
		{0x08B5752B, Instruction{Word: 0x08B5752B, Opcode: 0x2B, Rd: regA0, Funct3: 7, Rs1: regA0, Rs2: regA1, Funct7: XROTLEFT}, "XROTLEFT a0, a0, a1"},
	}
	for _, tc := range tests {
		inst, err := Decode(tc.word)
		require.NoError(t, err)
		assert.Equal(t, tc.want, inst)
		assert.Equal(t, tc.text, inst.String())
		assert.Equal(t, tc.word, rtype(uint32(inst.Funct7), uint32(inst.Rs2), uint32(inst.Rs1), uint32(inst.Funct3), uint32(inst.Rd), uint32(inst.Opcode)))
	}
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode(rtype(XBITREV, 0, regA0, Funct3XBit, regA0, 0x33))
	assert.True(t, errors.Is(err, xbiterrors.ErrXIllegalOpcode))

	_, err = Decode(rtype(XBITREV, 0, regA0, 0x1, regA0, OpcodeCustom1))
	assert.True(t, errors.Is(err, xbiterrors.ErrXIllegalFunct3))
}

func TestStepExecutesGroup(t *testing.T) {
	c := NewCore()
	require.NoError(t, c.SetRegister(5, 0xC0002003))
	require.NoError(t, c.SetRegister(6, 36))

	require.NoError(t, c.Step(rtype(XROTRIGHT, 6, 5, Funct3XBit, 7, OpcodeCustom1)))
	require.NoError(t, c.Step(rtype(XROTLEFT, 6, 5, Funct3XBit, 28, OpcodeCustom1)))
	require.NoError(t, c.Step(rtype(XBITREV, 0, 5, Funct3XBit, 29, OpcodeCustom1)))

	right, _ := c.Register(7)
	left, _ := c.Register(28)
	rev, _ := c.Register(29)
	assert.Equal(t, uint32(0x3C000200), right)
	assert.Equal(t, uint32(0x0002003C), left)
	assert.Equal(t, bitops.BitReverse32(0xC0002003), rev)
	assert.Equal(t, uint64(3), c.Executed())
}

func TestRegisterZeroIsHardwired(t *testing.T) {
	c := NewCore()
	require.NoError(t, c.SetRegister(0, 0xFFFFFFFF))
	require.NoError(t, c.SetRegister(regA0, 0x000000B0))
	require.NoError(t, c.Step(rtype(XBITREV, 0, regA0, Funct3XBit, 0, OpcodeCustom1)))

	zero, err := c.Register(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), zero)
}

func TestStepRejectsUnknownFunct7(t *testing.T) {
	c := NewCore()
	require.NoError(t, c.SetRegister(regA0, 0x1234))

	err := c.Step(rtype(0x05, regA1, regA0, Funct3XBit, regA0, OpcodeCustom1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, xbiterrors.ErrXIllegalFunct7))
	v, _ := c.Register(regA0)
	assert.Equal(t, uint32(0x1234), v)
	assert.Equal(t, uint64(0), c.Executed())
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	c := NewCore()
	require.NoError(t, c.SetRegister(regA0, 0x000000B0))

	err := c.Run([]uint32{0x0405752B, 0x00000013, 0x0405752B})
	require.Error(t, err)
	assert.True(t, errors.Is(err, xbiterrors.ErrXIllegalOpcode))
	assert.Contains(t, err.Error(), "instruction 1")
	v, _ := c.Register(regA0)
	assert.Equal(t, uint32(0x0D000000), v)
	assert.Equal(t, uint64(1), c.Executed())

	assert.True(t, errors.Is(c.Run(nil), xbiterrors.ErrXEmptyProgram))
}

func TestRegisterBounds(t *testing.T) {
	c := NewCore()
	_, err := c.Register(32)
	assert.True(t, errors.Is(err, xbiterrors.ErrXBadRegister))
	assert.True(t, errors.Is(c.SetRegister(-1, 0), xbiterrors.ErrXBadRegister))
	assert.Equal(t, "zero", RegisterName(0))
	assert.Equal(t, "a0", RegisterName(regA0))
	assert.Equal(t, "t6", RegisterName(31))
	assert.Equal(t, "x40", RegisterName(40))
}

func TestTraceLogsInstructions(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Root()
	defer log.SetDefault(prev)
	require.NoError(t, log.InitLoggerTo(&buf, "debug", false))
	log.EnableModule(log.XCoreMonitoring)
	defer log.DisableModule(log.XCoreMonitoring)
	Trace = true
	defer func() { Trace = false }()

	c := NewCore()
	require.NoError(t, c.SetRegister(regA0, 0xC0002003))
	require.NoError(t, c.SetRegister(regA1, 4))
	require.NoError(t, c.Step(0x06B5752B))

	out := buf.String()
	assert.Contains(t, out, "XROTRIGHT a0, a0, a1")
	assert.Contains(t, out, "0x3C000200")
}

func TestISATree(t *testing.T) {
	out := ISATree().String()
	assert.Contains(t, out, "opcode 0x2B (custom-1)")
	assert.Contains(t, out, "funct3 0x7")
	assert.Contains(t, out, "funct7 0x02 XBITREV")
	assert.Contains(t, out, "funct7 0x04 XROTLEFT")
	assert.Less(t, bytes.Index([]byte(out), []byte("XBITREV")), bytes.Index([]byte(out), []byte("XROTRIGHT")))
	assert.Equal(t, "UNKNOWN_0x7F", OpcodeToString(0x7F))
}
