package xcore

import (
	"fmt"
	"sort"

	"github.com/xlab/treeprint"
)

// ISATree lists the bit-manipulation group by opcode, funct3 and funct7.
func ISATree() treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("opcode 0x%02X (custom-1)", OpcodeCustom1))
	group := tree.AddBranch(fmt.Sprintf("funct3 0x%X", Funct3XBit))

	funct7s := make([]int, 0, len(opcodeNames))
	for f := range opcodeNames {
		funct7s = append(funct7s, int(f))
	}
	sort.Ints(funct7s)
	for _, f := range funct7s {
		group.AddNode(fmt.Sprintf("funct7 0x%02X %-9s %s", f, opcodeNames[uint8(f)], opcodeSyntax[uint8(f)]))
	}
	return tree
}
