package xcore

import (
	"fmt"

	"github.com/colorfulnotion/xbit/log"
	"github.com/colorfulnotion/xbit/xbiterrors"
)

const regSize = 32

// Trace logs every executed instruction on the xcore module.
var Trace = false

// Core is a register file able to execute the bit-manipulation group.
// A Core is not safe for concurrent use.
type Core struct {
	register [regSize]uint32
	executed uint64
}

func NewCore() *Core {
	return &Core{}
}

func (c *Core) Register(index int) (uint32, error) {
	if index < 0 || index >= regSize {
		return 0, fmt.Errorf("%w: x%d", xbiterrors.ErrXBadRegister, index)
	}
	return c.register[index], nil
}

// SetRegister writes a register; writes to x0 are dropped.
func (c *Core) SetRegister(index int, value uint32) error {
	if index < 0 || index >= regSize {
		return fmt.Errorf("%w: x%d", xbiterrors.ErrXBadRegister, index)
	}
	c.write(uint8(index), value)
	return nil
}

func (c *Core) write(index uint8, value uint32) {
	if index == 0 {
		return
	}
	c.register[index] = value
}

// Executed returns the number of instructions retired.
func (c *Core) Executed() uint64 {
	return c.executed
}

// Step decodes and executes one instruction word. Registers are left
// untouched when the word is rejected.
func (c *Core) Step(word uint32) error {
	inst, err := Decode(word)
	if err != nil {
		return err
	}
	handler := dispatchTable[inst.Funct7]
	if handler == nil {
		return fmt.Errorf("%w: funct7 0x%02X", xbiterrors.ErrXIllegalFunct7, inst.Funct7)
	}
	if Trace {
		log.Debug(log.XCoreMonitoring, "step", "word", fmt.Sprintf("0x%08X", word), "inst", inst.String())
	}
	handler(c, inst)
	c.executed++
	return nil
}

// Run executes words in order and stops at the first rejected word.
func (c *Core) Run(words []uint32) error {
	if len(words) == 0 {
		return xbiterrors.ErrXEmptyProgram
	}
	for i, word := range words {
		if err := c.Step(word); err != nil {
			return fmt.Errorf("instruction %d (0x%08X): %w", i, word, err)
		}
	}
	return nil
}

var abiNames = [regSize]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// RegisterName returns the ABI name of register index.
func RegisterName(index int) string {
	if index < 0 || index >= regSize {
		return fmt.Sprintf("x%d", index)
	}
	return abiNames[index]
}
