package dto

import "strconv"

func itoa(n int) string {
	return strconv.Itoa(n)
}

// centsToAmount renders an amount in cents as a decimal currency string
func centsToAmount(cents int) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
