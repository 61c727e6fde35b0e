package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	priceKeepRe = regexp.MustCompile(`[^\d.,]`)
	decimalRe   = regexp.MustCompile(`\d+(?:\.\d+)?`)
	digitsRe    = regexp.MustCompile(`\d+`)
)

// ParsePrice converts a free-form BR currency string ("R$ 850.000,00") into
// a number. Grouping periods are stripped before the comma becomes the
// decimal separator; getting that order wrong silently truncates amounts
// ("1.250.000,00" must not read as 1.25). On failure it returns +Inf, so an
// unparseable price fails any upper bound but passes any lower bound.
func ParsePrice(price string) float64 {
	cleaned := priceKeepRe.ReplaceAllString(price, "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	match := decimalRe.FindString(cleaned)
	if match == "" {
		return math.Inf(1)
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return math.Inf(1)
	}
	return value
}

// ExtractInt pulls the first run of digits out of a free-form value such as
// "3 dormitórios". The second return is false when no digits are present.
func ExtractInt(s string) (int, bool) {
	match := digitsRe.FindString(s)
	if match == "" {
		return 0, false
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return value, true
}
