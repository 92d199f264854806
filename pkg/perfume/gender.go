package perfume

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidInput is returned for a gender outside of the known aliases.
var ErrInvalidInput = errors.New("Gender must be male or female.")

var genderAliases = map[string]Gender{
	"m":      Male,
	"man":    Male,
	"male":   Male,
	"f":      Female,
	"woman":  Female,
	"female": Female,
}

func NormalizeGender(raw string) (Gender, error) {
	g, ok := genderAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", ErrInvalidInput
	}

	return g, nil
}
