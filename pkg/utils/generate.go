package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// GenerateCode creates a numeric verification code of the given length.
// Codes gate account creation, so they come from crypto/rand rather than
// a seeded PRNG.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	var code strings.Builder
	code.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code.WriteByte(byte('0' + n.Int64()))
	}

	return code.String(), nil
}
