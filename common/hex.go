package common

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatHex32 renders v as 0x followed by 8 uppercase hex digits.
func FormatHex32(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}

// FormatBin32 renders v as 32 binary digits grouped in nibbles.
func FormatBin32(v uint32) string {
	s := fmt.Sprintf("%032b", v)
	var sb strings.Builder
	for i := 0; i < len(s); i += 4 {
		if i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(s[i : i+4])
	}
	return sb.String()
}

// ParseUint32 accepts 0x/0X hex, 0b/0B binary, 0o octal or decimal, with
// optional '_' digit separators.
func ParseUint32(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
