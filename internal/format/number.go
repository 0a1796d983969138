// Package format holds the pure string formatters shared by the console
// reports and the plot legends.
package format

import "strconv"

// DecimalPlaces is the number of fractional digits used for every numeric
// report printed by the calculator.
const DecimalPlaces = 4

// Decimal formats v with exactly DecimalPlaces fractional digits.
// Negative zero is printed as "0.0000".
func Decimal(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', DecimalPlaces, 64)
}

// Point formats a coordinate pair as "x = X; y = Y;".
func Point(x, y float64) string {
	return "x = " + Decimal(x) + "; y = " + Decimal(y) + ";"
}
