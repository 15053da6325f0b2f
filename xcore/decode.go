package xcore

import (
	"fmt"

	"github.com/colorfulnotion/xbit/xbiterrors"
)

// Instruction holds the fields of an R-type instruction word.
type Instruction struct {
	Word   uint32
	Opcode uint8
	Rd     uint8
	Funct3 uint8
	Rs1    uint8
	Rs2    uint8
	Funct7 uint8
}

// Decode splits an R-type word of the bit-manipulation group:
//
//	31..25 funct7 | 24..20 rs2 | 19..15 rs1 | 14..12 funct3 | 11..7 rd | 6..0 opcode
func Decode(word uint32) (Instruction, error) {
	inst := Instruction{
		Word:   word,
		Opcode: uint8(word & 0x7F),
		Rd:     uint8((word >> 7) & 0x1F),
		Funct3: uint8((word >> 12) & 0x7),
		Rs1:    uint8((word >> 15) & 0x1F),
		Rs2:    uint8((word >> 20) & 0x1F),
		Funct7: uint8(word >> 25),
	}
	if inst.Opcode != OpcodeCustom1 {
		return inst, fmt.Errorf("%w: opcode 0x%02X", xbiterrors.ErrXIllegalOpcode, inst.Opcode)
	}
	if inst.Funct3 != Funct3XBit {
		return inst, fmt.Errorf("%w: funct3 0x%X", xbiterrors.ErrXIllegalFunct3, inst.Funct3)
	}
	return inst, nil
}

func (inst Instruction) String() string {
	name := OpcodeToString(inst.Funct7)
	if inst.Funct7 == XBITREV {
		return fmt.Sprintf("%s %s, %s", name, RegisterName(int(inst.Rd)), RegisterName(int(inst.Rs1)))
	}
	return fmt.Sprintf("%s %s, %s, %s", name, RegisterName(int(inst.Rd)), RegisterName(int(inst.Rs1)), RegisterName(int(inst.Rs2)))
}
