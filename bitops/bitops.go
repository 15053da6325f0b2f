// Package bitops implements the 32-bit bit reversal and rotate primitives of
// the custom processor extension as portable software routines.
package bitops

// Width is the operand width in bits.
const Width = 32

// EffectiveShift reduces a rotate amount modulo the operand width.
func EffectiveShift(shift uint32) uint32 {
	return shift & (Width - 1)
}

// BitReverse32 mirrors the bit order of value: output bit i is input bit 31-i.
// The swap network gives the same result as bits.Reverse32.
func BitReverse32(value uint32) uint32 {
	value = (value>>1)&0x55555555 | (value&0x55555555)<<1
	value = (value>>2)&0x33333333 | (value&0x33333333)<<2
	value = (value>>4)&0x0F0F0F0F | (value&0x0F0F0F0F)<<4
	value = (value>>8)&0x00FF00FF | (value&0x00FF00FF)<<8
	return value>>16 | value<<16
}

// RotateRight32 rotates value right by shift mod 32 bits.
func RotateRight32(value, shift uint32) uint32 {
	s := shift & (Width - 1)
	if s == 0 {
		return value
	}
	return value>>s | value<<(Width-s)
}

// RotateLeft32 rotates value left by shift mod 32 bits.
func RotateLeft32(value, shift uint32) uint32 {
	s := shift & (Width - 1)
	if s == 0 {
		return value
	}
	return value<<s | value>>(Width-s)
}
