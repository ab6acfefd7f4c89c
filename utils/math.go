// utils/math.go
package utils

import "math"

// Round rounds a number to 2 decimal places for monetary output
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}
