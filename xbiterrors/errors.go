package xbiterrors

import (
	"errors"
	"strings"
)

// XCore (X) Errors
var (
	ErrXIllegalOpcode = errors.New("X1|IllegalOpcode: Instruction word is not in the custom-1 major opcode space.")
	ErrXIllegalFunct3 = errors.New("X2|IllegalFunct3: Instruction funct3 does not select the bit-manipulation group.")
	ErrXIllegalFunct7 = errors.New("X3|IllegalFunct7: Instruction funct7 does not name a known bit-manipulation operation.")
	ErrXBadRegister   = errors.New("X4|BadRegister: Register index is outside the register file.")
	ErrXEmptyProgram  = errors.New("X5|EmptyProgram: Program contains no instruction words.")
)

// Eval (E) Errors
var (
	ErrEUnknownOp  = errors.New("E1|UnknownOp: Expression names an unknown operation.")
	ErrEBadArity   = errors.New("E2|BadArity: Expression has the wrong number of operands for its operation.")
	ErrEBadNumber  = errors.New("E3|BadNumber: Operand is not a 32-bit unsigned number.")
	ErrEBadEngine  = errors.New("E4|BadEngine: Unknown evaluation engine.")
	ErrEBadVariant = errors.New("E5|BadVariant: Unknown report variant.")
)

// Vector (V) Errors
var (
	ErrVBadVectorFile = errors.New("V1|BadVectorFile: Vector file is not a JSON array of vectors.")
	ErrVUnknownOp     = errors.New("V2|UnknownOp: Vector names an unknown operation.")
	ErrVBadNumber     = errors.New("V3|BadNumber: Vector field is not a 32-bit unsigned number.")
	ErrVMismatch      = errors.New("V4|Mismatch: Computed value differs from the expected value.")
)

// GetErrorName extracts the error name from the error message.
func GetErrorName(err error) string {
	if err == nil {
		return "No Error"
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "|") || !strings.Contains(errStr, ":") {
		return errStr
	}
	parts := strings.SplitN(errStr, "|", 2)
	if len(parts) < 2 {
		return errStr
	}
	// Split on ':' to separate the error name from its description.
	nameParts := strings.SplitN(parts[1], ":", 2)
	return strings.TrimSpace(nameParts[0])
}

func GetErrorNames(errs []error) []string {
	errStrs := make([]string, len(errs))
	for i, err := range errs {
		errStrs[i] = GetErrorName(err)
	}
	return errStrs
}

// GetErrorCode extracts the error code from the error message.
func GetErrorCode(err error) string {
	if err == nil {
		return ""
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "|") {
		return ""
	}
	parts := strings.SplitN(errStr, "|", 2)
	return strings.TrimSpace(parts[0])
}

// GetErrorCodeWithName returns the error code and name in the format "Code_ErrorName".
func GetErrorCodeWithName(err error) string {
	code := GetErrorCode(err)
	name := GetErrorName(err)
	if code == "" || name == "" {
		return ""
	}
	return code + "_" + name
}

// GetErrorDesc extracts the error description from the error message.
func GetErrorDesc(err error) string {
	if err == nil {
		return ""
	}
	parts := strings.SplitN(err.Error(), ":", 2)
	if len(parts) < 2 {
		return "DESC NOT SET"
	}
	return strings.TrimSpace(parts[1])
}
