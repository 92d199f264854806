package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var rainyAnswers = map[string]bool{
	"yes":  true,
	"y":    true,
	"true": true,
	"1":    true,
}

// ParseTemperature reads a temperature in °C, e.g. "22", "-3.5" or "1e1".
// Hexadecimal floats are not temperatures, "nan" and "inf" are accepted.
func ParseTemperature(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)

	if isHexFloat(raw) {
		return 0, conversionError(raw)
	}

	t, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, conversionError(raw)
	}

	return t, nil
}

func isHexFloat(raw string) bool {
	unsigned := strings.TrimLeft(raw, "+-")

	return strings.HasPrefix(strings.ToLower(unsigned), "0x")
}

func conversionError(raw string) error {
	return errors.Errorf("could not convert string to float: '%s'", raw)
}

// ParseRainy is true only for the known affirmative answers, anything else means no rain.
func ParseRainy(raw string) bool {
	return rainyAnswers[strings.ToLower(strings.TrimSpace(raw))]
}
