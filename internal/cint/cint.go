// Package cint holds the fixed-width integer operand type used by the stack
// tests. Arithmetic and wraparound behaviour belong to the calculator, not
// to this module.
package cint

import (
	"math"
	"strconv"
)

// Int is a 32-bit calculator operand.
type Int int32

// Min returns the lowest representable operand.
func (Int) Min() Int {
	return math.MinInt32
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}
