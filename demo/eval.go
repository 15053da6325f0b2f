package demo

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/xbit/bitops"
	"github.com/colorfulnotion/xbit/common"
	"github.com/colorfulnotion/xbit/xbiterrors"
)

const (
	OpBitReverse  = "bitrev"
	OpRotateRight = "rotr"
	OpRotateLeft  = "rotl"
)

var opAliases = map[string]string{
	"rev":    OpBitReverse,
	"bitrev": OpBitReverse,
	"rotr":   OpRotateRight,
	"right":  OpRotateRight,
	"rotl":   OpRotateLeft,
	"left":   OpRotateLeft,
}

// CanonicalOp resolves an operation name or alias.
func CanonicalOp(name string) (string, bool) {
	op, ok := opAliases[strings.ToLower(strings.TrimSpace(name))]
	return op, ok
}

// Apply evaluates op on value and shift; shift is ignored by bitrev.
func Apply(op string, value, shift uint32) (uint32, error) {
	switch op {
	case OpBitReverse:
		return bitops.BitReverse32(value), nil
	case OpRotateRight:
		return bitops.RotateRight32(value, shift), nil
	case OpRotateLeft:
		return bitops.RotateLeft32(value, shift), nil
	default:
		return 0, fmt.Errorf("%w: %q", xbiterrors.ErrEUnknownOp, op)
	}
}

// Eval evaluates "<op> <value> [shift]" and returns the result as 0x%08X.
func Eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty expression", xbiterrors.ErrEBadArity)
	}
	op, ok := CanonicalOp(fields[0])
	if !ok {
		return "", fmt.Errorf("%w: %q", xbiterrors.ErrEUnknownOp, fields[0])
	}
	want := 3
	if op == OpBitReverse {
		want = 2
	}
	if len(fields) != want {
		return "", fmt.Errorf("%w: %s takes %d operand(s), got %d", xbiterrors.ErrEBadArity, op, want-1, len(fields)-1)
	}

	operands := make([]uint32, 2)
	for i, f := range fields[1:] {
		v, err := common.ParseUint32(f)
		if err != nil {
			return "", fmt.Errorf("%w: %q", xbiterrors.ErrEBadNumber, f)
		}
		operands[i] = v
	}
	result, err := Apply(op, operands[0], operands[1])
	if err != nil {
		return "", err
	}
	return common.FormatHex32(result), nil
}
