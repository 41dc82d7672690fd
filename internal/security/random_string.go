package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Picking each character via rand.Int keeps the result
// unbiased for alphabets whose size is not a power of two.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", fmt.Errorf("random string length %d is negative", length)
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", fmt.Errorf("random string needs a non-empty alphabet")
	}

	bound := big.NewInt(int64(len(alphabet)))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		pick, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return "", fmt.Errorf("draw random character: %w", err)
		}
		builder.WriteByte(alphabet[pick.Int64()])
	}

	return builder.String(), nil
}
