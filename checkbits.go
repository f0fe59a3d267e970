// Package checkbits reports which low bits are set in an integer.
//
// Only the first [Width] bit positions are ever inspected. Bits at or above
// position 128 are silently ignored even when set; the window is fixed rather
// than derived from the value's actual length. Negative values follow
// [math/big]'s infinite two's-complement semantics, so -1 has every bit in
// the window set.
package checkbits

import (
	"fmt"
	"io"
	"math/big"
)

// Width is the number of bit positions inspected, starting at 0.
const Width = 128

// EachSetBit calls visit for every set bit position inside the window,
// in ascending order.
func EachSetBit(n *big.Int, visit func(pos uint)) {
	for i := 0; i < Width; i++ {
		if n.Bit(i) == 1 {
			visit(uint(i))
		}
	}
}

// SetBits returns the set bit positions inside the window, ascending,
// each exactly once.
func SetBits(n *big.Int) []uint {
	positions := []uint{}
	EachSetBit(n, func(pos uint) {
		positions = append(positions, pos)
	})
	return positions
}

// Count returns the number of set bits inside the window.
func Count(n *big.Int) int {
	count := 0
	EachSetBit(n, func(uint) {
		count++
	})
	return count
}

// Write prints the bit listing for n: a "Bits set:" header, then one line per
// set position with three spaces of indentation. A value with no set bits in
// the window produces the header alone.
func Write(w io.Writer, n *big.Int) error {
	if _, err := io.WriteString(w, "Bits set:\n"); err != nil {
		return err
	}
	var err error
	EachSetBit(n, func(pos uint) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "   %d\n", pos)
	})
	return err
}
