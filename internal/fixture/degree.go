package fixture

import (
	"math"
	"math/bits"
)

// DegToMicroarcseconds converts whole degrees into microarcseconds.
func DegToMicroarcseconds(deg uint32) uint64 {
	return uint64(deg) *
		60 * // arcminutes
		60 * // arcseconds
		1000 * // milliarcseconds
		1000 // microarcseconds
}

// ScaleDeg returns input*outputRange/inputRange, truncated toward zero.
// The product is computed in 128 bits so it cannot overflow. A zero inputRange
// yields 0; a quotient that does not fit 64 bits saturates.
func ScaleDeg(input, inputRange, outputRange uint64) uint64 {
	if inputRange == 0 {
		return 0
	}
	hi, lo := bits.Mul64(input, outputRange)
	if hi >= inputRange {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, inputRange)
	return q
}

// byteSteps is the size of the input domain of a DMX channel.
const byteSteps = 256

func scaleByte(input uint8, outputRange uint64) uint64 {
	return ScaleDeg(uint64(input), byteSteps, outputRange)
}
