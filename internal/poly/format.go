package poly

import (
	"math"
	"strconv"
	"strings"

	"github.com/agbru/lagcalc/internal/format"
)

// Format renders p as "y = + c0*x^n ... + c_n".
//
// Every coefficient carries its own sign token and exactly four fractional
// digits. The linear term is written "x" and the constant term has no x.
// A coefficient is signed "+" when it is >= 0, so negative zero prints as
// "+ 0.0000".
func Format(p Polynomial) string {
	var b strings.Builder
	b.WriteString("y =")
	for i, c := range p {
		if c >= 0 {
			b.WriteString(" + ")
		} else {
			b.WriteString(" - ")
		}
		b.WriteString(format.Decimal(math.Abs(c)))

		power := len(p) - i - 1
		if power == 0 {
			continue
		}
		b.WriteString("*x")
		if power > 1 {
			b.WriteString("^")
			b.WriteString(strconv.Itoa(power))
		}
	}
	return b.String()
}

// String implements fmt.Stringer using Format.
func (p Polynomial) String() string { return Format(p) }
