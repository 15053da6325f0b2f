package demo

import (
	"fmt"

	"github.com/colorfulnotion/xbit/bitops"
	"github.com/colorfulnotion/xbit/log"
	"github.com/colorfulnotion/xbit/xbiterrors"
	"github.com/colorfulnotion/xbit/xcore"
)

const (
	EngineSoftware = "soft"
	EngineEmulated = "xcore"
)

// Engine evaluates the three primitives.
type Engine interface {
	Name() string
	BitReverse32(value uint32) (uint32, error)
	RotateRight32(value, shift uint32) (uint32, error)
	RotateLeft32(value, shift uint32) (uint32, error)
}

// NewEngine returns the engine registered under name.
func NewEngine(name string) (Engine, error) {
	switch name {
	case EngineSoftware, "":
		return SoftwareEngine{}, nil
	case EngineEmulated:
		return EmulatedEngine{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", xbiterrors.ErrEBadEngine, name)
	}
}

// SoftwareEngine calls the bitops routines directly.
type SoftwareEngine struct{}

func (SoftwareEngine) Name() string { return EngineSoftware }

func (SoftwareEngine) BitReverse32(value uint32) (uint32, error) {
	return bitops.BitReverse32(value), nil
}

func (SoftwareEngine) RotateRight32(value, shift uint32) (uint32, error) {
	return bitops.RotateRight32(value, shift), nil
}

func (SoftwareEngine) RotateLeft32(value, shift uint32) (uint32, error) {
	return bitops.RotateLeft32(value, shift), nil
}

// Instruction words executed by EmulatedEngine, operands in a0/a1, result in a0.
const (
	WordBitRev   uint32 = 0x0405752B // XBITREV   a0, a0, zero
	WordRotRight uint32 = 0x06B5752B // XROTRIGHT a0, a0, a1
	WordRotLeft  uint32 = 0x08B5752B // XROTLEFT  a0, a0, a1
)

const (
	regA0 = 10
	regA1 = 11
)

// EmulatedEngine runs each primitive as an instruction on a fresh xcore.Core.
type EmulatedEngine struct{}

func (EmulatedEngine) Name() string { return EngineEmulated }

func (EmulatedEngine) BitReverse32(value uint32) (uint32, error) {
	return execute(WordBitRev, value, 0)
}

func (EmulatedEngine) RotateRight32(value, shift uint32) (uint32, error) {
	return execute(WordRotRight, value, shift)
}

func (EmulatedEngine) RotateLeft32(value, shift uint32) (uint32, error) {
	return execute(WordRotLeft, value, shift)
}

func execute(word, a0, a1 uint32) (uint32, error) {
	c := xcore.NewCore()
	if err := c.SetRegister(regA0, a0); err != nil {
		return 0, err
	}
	if err := c.SetRegister(regA1, a1); err != nil {
		return 0, err
	}
	if err := c.Run([]uint32{word}); err != nil {
		return 0, err
	}
	log.Debug(log.XCoreMonitoring, "engine executed", "word", fmt.Sprintf("0x%08X", word), "retired", c.Executed())
	return c.Register(regA0)
}
