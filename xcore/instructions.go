package xcore

import (
	"fmt"

	"github.com/colorfulnotion/xbit/bitops"
	"github.com/colorfulnotion/xbit/log"
)

// Custom-1 major opcode and the funct3 selecting the bit-manipulation group.
const (
	OpcodeCustom1 = 0x2B
	Funct3XBit    = 0x7
)

// funct7 values of the bit-manipulation group.
const (
	XBITREV   = 0x02 // rd = bitrev(rs1), rs2 = zero
	XROTRIGHT = 0x03 // rd = rs1 rotr rs2
	XROTLEFT  = 0x04 // rd = rs1 rotl rs2
)

var opcodeNames = map[uint8]string{
	XBITREV:   "XBITREV",
	XROTRIGHT: "XROTRIGHT",
	XROTLEFT:  "XROTLEFT",
}

var opcodeSyntax = map[uint8]string{
	XBITREV:   "rd, rs1, zero",
	XROTRIGHT: "rd, rs1, rs2",
	XROTLEFT:  "rd, rs1, rs2",
}

// OpcodeToString returns the mnemonic for a funct7 value of the group.
func OpcodeToString(funct7 uint8) string {
	if name, ok := opcodeNames[funct7]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_0x%02X", funct7)
}

var dispatchTable [1 << 7]func(*Core, Instruction)

func init() {
	dispatchTable[XBITREV] = handleXBITREV
	dispatchTable[XROTRIGHT] = handleXROTRIGHT
	dispatchTable[XROTLEFT] = handleXROTLEFT
}

func handleXBITREV(c *Core, inst Instruction) {
	valueA := c.register[inst.Rs1]
	result := bitops.BitReverse32(valueA)
	if Trace {
		dumpTwoRegOp("bitrev", inst.Rd, inst.Rs1, valueA, result)
	}
	c.write(inst.Rd, result)
}

func handleXROTRIGHT(c *Core, inst Instruction) {
	valueA := c.register[inst.Rs1]
	valueB := c.register[inst.Rs2]
	result := bitops.RotateRight32(valueA, valueB)
	if Trace {
		dumpRotOp(">>>", inst.Rd, inst.Rs1, bitops.EffectiveShift(valueB), result)
	}
	c.write(inst.Rd, result)
}

func handleXROTLEFT(c *Core, inst Instruction) {
	valueA := c.register[inst.Rs1]
	valueB := c.register[inst.Rs2]
	result := bitops.RotateLeft32(valueA, valueB)
	if Trace {
		dumpRotOp("<<<", inst.Rd, inst.Rs1, bitops.EffectiveShift(valueB), result)
	}
	c.write(inst.Rd, result)
}

func dumpTwoRegOp(name string, regD, regA uint8, valueA, result uint32) {
	log.Debug(log.XCoreMonitoring, name,
		"rd", RegisterName(int(regD)), "rs1", RegisterName(int(regA)),
		"in", fmt.Sprintf("0x%08X", valueA), "out", fmt.Sprintf("0x%08X", result))
}

func dumpRotOp(name string, regD, regA uint8, shift, result uint32) {
	log.Debug(log.XCoreMonitoring, name,
		"rd", RegisterName(int(regD)), "rs1", RegisterName(int(regA)),
		"shift", shift, "out", fmt.Sprintf("0x%08X", result))
}
